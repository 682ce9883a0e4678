package components

import (
	"errors"
	"fmt"

	"physim/internal/engine"
	"physim/internal/physics"
)

var (
	ErrNoCollider       = errors.New("components: game object has no collider")
	ErrParentedCollider = errors.New("components: collider must be on a root game object")
)

// BuildEntity turns a GameObject's collider and rigidbody into a physics
// entity anchored on the object, so the solver moves its transform directly.
// The rigidbody is optional; without one the defaults of NewRigidbody apply.
// The entity ID is the GameObject ID. Physics moves the local position, so
// colliders must sit on root objects.
func BuildEntity(g *engine.GameObject) (physics.Entity, error) {
	sc := engine.GetComponent[*SphereCollider](g)
	pc := engine.GetComponent[*PlaneCollider](g)
	if sc == nil && pc == nil {
		return nil, fmt.Errorf("%s: %w", g.Name, ErrNoCollider)
	}
	if g.Parent != nil {
		return nil, fmt.Errorf("%s: %w", g.Name, ErrParentedCollider)
	}

	rb := engine.GetComponent[*Rigidbody](g)
	if rb == nil {
		rb = NewRigidbody()
		g.AddComponent(rb)
	}
	opts := rb.bodyOptions()

	if sc != nil {
		s, err := physics.NewSphere(g.ID, sc.Radius, g, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.Name, err)
		}
		rb.body = s.Body()
		return s, nil
	}
	p, err := physics.NewPlane(g.ID, pc.Normal, g, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name, err)
	}
	rb.IsStatic = true
	rb.body = p.Body()
	return p, nil
}

// BuildScene builds an entity for every GameObject in the scene that has a
// collider. Objects without one are skipped.
func BuildScene(s *engine.Scene) ([]physics.Entity, error) {
	var entities []physics.Entity
	for _, g := range s.GameObjects {
		e, err := BuildEntity(g)
		if errors.Is(err, ErrNoCollider) {
			continue
		}
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}
