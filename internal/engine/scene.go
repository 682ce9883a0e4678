package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	byID        map[string]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		byID:        make(map[string]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.byID == nil {
		s.byID = make(map[string]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.byID[g.ID] = g
}

// RemoveGameObject removes g and all of its descendants.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.byID, g.ID)
			g.Scene = nil
			return
		}
	}
}

// FindByID is an O(1) lookup by GameObject ID.
func (s *Scene) FindByID(id string) *GameObject {
	return s.byID[id]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
