package physics_test

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/mock/gomock"

	"physim/internal/physics"
	"physim/internal/physics/mocks"
)

func groundMock(ctrl *gomock.Controller, body *physics.Dynamics) *mocks.MockEntity {
	m := mocks.NewMockEntity(ctrl)
	up := rl.Vector3{X: 0, Y: 1, Z: 0}
	m.EXPECT().ID().Return("ground").AnyTimes()
	m.EXPECT().Body().Return(body).AnyTimes()
	m.EXPECT().CollisionShape().Return(physics.ShapePlane).AnyTimes()
	m.EXPECT().Shape().Return(physics.Shape{Kind: physics.ShapePlane, Normal: up}).AnyTimes()
	m.EXPECT().Position().Return(rl.Vector3{}).AnyTimes()
	m.EXPECT().AABB().Return(physics.NewAABBFromHalfExtents(rl.Vector3{}, rl.Vector3{X: 10000, Y: 1, Z: 10000})).AnyTimes()
	return m
}

func TestWorldUpdateResetsEveryEntityOncePerTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ground := groundMock(ctrl, &physics.Dynamics{Static: true, Restitution: 1})
	ground.EXPECT().Reset().Times(3)

	w := physics.NewWorld(physics.HeckerVerlet)
	if err := w.AddEntity(ground); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}

	for i := 0; i < 3; i++ {
		w.Update(1.0 / 60)
	}
}

func TestWorldRejectsMasslessDynamicEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockEntity(ctrl)
	m.EXPECT().Body().Return(&physics.Dynamics{Mass: 0}).AnyTimes()
	m.EXPECT().ID().Return("ghost").AnyTimes()

	w := physics.NewWorld(physics.NaiveEuler)
	if err := w.AddEntity(m); !errors.Is(err, physics.ErrInvalidMass) {
		t.Errorf("Expected ErrInvalidMass, got %v", err)
	}
}

func TestSphereBouncesOffMockedGround(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ground := groundMock(ctrl, &physics.Dynamics{Static: true, Restitution: 1})
	ground.EXPECT().Reset().AnyTimes()
	ground.EXPECT().SetPosition(gomock.Any()).Times(0)

	ball, err := physics.NewSphere("ball", 0.5, physics.NewPoint(rl.Vector3{Y: 0.45}),
		physics.WithVelocity(rl.Vector3{Y: -5}), physics.WithRestitution(0.5))
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}

	w := physics.NewWorld(physics.HeckerVerlet, physics.WithGravity(rl.Vector3{}))
	if err := w.AddEntities(ball, ground); err != nil {
		t.Fatalf("AddEntities: %v", err)
	}
	w.Update(1.0 / 60)

	if ball.Velocity.Y <= 0 {
		t.Errorf("Expected ball to bounce upward, got vy %v", ball.Velocity.Y)
	}
	if !ball.CollidedWith("ground") {
		t.Error("Ball should be marked collided with the ground")
	}
}
