package ui

// transform 设计坐标到屏幕坐标的映射：screen = origin + factor * p
type transform struct {
	ox, oy float64
	factor float64
}

func (t transform) apply(r Rect) Rect {
	return Rect{
		X: t.ox + t.factor*r.X,
		Y: t.oy + t.factor*r.Y,
		W: t.factor * r.W,
		H: t.factor * r.H,
	}
}

// scaledAbout 在当前映射之后叠加"以 c 为中心缩放 s"
func (t transform) scaledAbout(c Vec2, s float64) transform {
	return transform{
		ox:     t.ox + t.factor*c.X*(1-s),
		oy:     t.oy + t.factor*c.Y*(1-s),
		factor: t.factor * s,
	}
}

// Layout 计算整棵树的屏幕矩形
// 根节点相对 screenW x screenH 的屏幕定位
func Layout(root *Node, screenW, screenH float64) {
	if root == nil {
		return
	}
	layoutNode(root, Rect{W: screenW, H: screenH}, transform{factor: 1})
}

func layoutNode(n *Node, parent Rect, t transform) {
	p := n.Props
	w := p.Size.XScale*parent.W + p.Size.XOffset
	h := p.Size.YScale*parent.H + p.Size.YOffset
	design := Rect{
		X: parent.X + p.Position.XScale*parent.W + p.Position.XOffset - p.Anchor.X*w,
		Y: parent.Y + p.Position.YScale*parent.H + p.Position.YOffset - p.Anchor.Y*h,
		W: w,
		H: h,
	}

	if p.Scale != 0 && p.Scale != 1 {
		t = t.scaledAbout(design.Center(), p.Scale)
	}

	n.Bounds = t.apply(design)
	n.Factor = t.factor

	for _, child := range n.Children {
		layoutNode(child, design, t)
	}
}

// HitTest 返回包含 (x, y) 的最上层可交互节点
// 后添加的子节点位于上层；没有命中时返回 nil
func HitTest(root *Node, x, y float64) *Node {
	if root == nil {
		return nil
	}
	for i := len(root.Children) - 1; i >= 0; i-- {
		if hit := HitTest(root.Children[i], x, y); hit != nil {
			return hit
		}
	}
	if root.interactive() && root.Bounds.Contains(x, y) {
		return root
	}
	return nil
}
