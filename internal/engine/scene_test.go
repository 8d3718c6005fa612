package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Crate")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Crate")
	obj2 := NewGameObject("Floor")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}
	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}
	if obj1.Scene != nil {
		t.Error("Removed GameObject still references the scene")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Crate")

	scene.AddGameObject(obj)

	if scene.FindByName("Crate") != obj {
		t.Error("FindByName failed")
	}
	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneUpdatePropagates(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Crate")
	probe := &probeComponent{}
	obj.AddComponent(probe)
	scene.AddGameObject(obj)

	scene.Update(0.016)

	if probe.updates != 1 {
		t.Errorf("scene update reached %d components, want 1", probe.updates)
	}
}
