package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.ID == "" {
		t.Error("ID should not be empty")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.ID == obj2.ID || obj2.ID == obj3.ID || obj1.ID == obj3.ID {
		t.Error("GameObjects should have unique IDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"ball", "dynamic"}

	if !obj.HasTag("ball") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("ground") {
		t.Error("HasTag should return false for non-existent tag")
	}

	// Test empty tags
	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	parent.RemoveChild(child)

	if len(parent.Children) != 0 {
		t.Errorf("Expected 0 children after removal, got %d", len(parent.Children))
	}

	if child.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectPositionAccessors(t *testing.T) {
	obj := NewGameObject("Ball")

	obj.SetPosition(rl.Vector3{X: 1, Y: 2, Z: 3})

	if obj.Transform.Position != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("SetPosition should write the transform, got %v", obj.Transform.Position)
	}
	if obj.Position() != obj.Transform.Position {
		t.Errorf("Position should read the transform, got %v", obj.Position())
	}
}

func TestGameObjectWorldPosition(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 1}
	parent.AddChild(child)

	got := child.WorldPosition()
	if got != (rl.Vector3{X: 12, Y: 2}) {
		t.Errorf("Expected world position (12,2,0), got %v", got)
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	// First call should set started = true
	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	// Second call should be a no-op
	obj.Start()
}
