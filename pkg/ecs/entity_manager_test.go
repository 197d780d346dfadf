package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPanelComponent struct {
	Open bool
}

type testTextComponent struct {
	Text string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if !em.IsAlive(id1) || em.EntityCount() != 2 {
		t.Errorf("expected 2 live entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPanelComponent{Open: true})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPanelComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if !comp.(*testPanelComponent).Open {
		t.Error("Component data mismatch")
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	other := em.CreateEntity()

	AddComponent(em, id, &testPanelComponent{})
	AddComponent(em, id, &testTextComponent{Text: "abc"})
	AddComponent(em, other, &testTextComponent{})

	text, ok := GetComponent[*testTextComponent](em, id)
	if !ok || text.Text != "abc" {
		t.Fatalf("GetComponent = (%v, %v)", text, ok)
	}

	// 泛型写入与反射读取使用同一个类型键
	if !em.HasComponent(id, reflect.TypeOf(&testTextComponent{})) {
		t.Error("reflect lookup should see generic component")
	}

	if got := GetEntitiesWith1[*testTextComponent](em); len(got) != 2 || got[0] != id || got[1] != other {
		t.Errorf("GetEntitiesWith1 = %v", got)
	}
	if got := GetEntitiesWith2[*testPanelComponent, *testTextComponent](em); len(got) != 1 || got[0] != id {
		t.Errorf("GetEntitiesWith2 = %v", got)
	}

	RemoveComponent[*testPanelComponent](em, id)
	if HasComponent[*testPanelComponent](em, id) {
		t.Error("component should be removed")
	}

	if _, ok := GetComponent[*testPanelComponent](em, 999); ok {
		t.Error("unknown entity should have no components")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPanelComponent{})

	em.DestroyEntity(id)

	// 标记删除后，清理前仍然存在
	if !HasComponent[*testPanelComponent](em, id) {
		t.Error("Entity should still exist before RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()

	if em.IsAlive(id) {
		t.Error("Entity should be removed after RemoveMarkedEntities")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, want 0", em.EntityCount())
	}
}
