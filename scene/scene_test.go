package scene

import (
	"math/rand"
	"testing"

	"github.com/david14higgins/Pathtracer/types"
)

func TestAddPrimitiveRequiresRegisteredMaterial(t *testing.T) {
	s := NewScene(types.XYZ(0, 0, 0))
	mat := DefaultMaterial()
	sphere := NewSphere(types.XYZ(0, 0, 0), 1, &mat)

	if err := s.AddPrimitive(sphere); err == nil {
		t.Fatal("expected error adding primitive before its material is registered")
	}

	if err := s.AddMaterial(&mat); err != nil {
		t.Fatalf("AddMaterial: %v", err)
	}
	if err := s.AddPrimitive(sphere); err != nil {
		t.Fatalf("AddPrimitive after registering material: %v", err)
	}
}

func TestSceneBVHandLinearAgree(t *testing.T) {
	s := NewScene(types.XYZ(0.2, 0.3, 0.8))
	mat := DefaultMaterial()
	s.AddMaterial(&mat)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		center := types.XYZ(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		s.AddPrimitive(NewSphere(center, 0.5+rng.Float64(), &mat))
	}

	for i := 0; i < 200; i++ {
		origin := types.XYZ(rng.Float64()*40-20, rng.Float64()*40-20, rng.Float64()*40-20)
		dir := types.XYZ(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		ray := types.NewRay(origin, dir)

		bt, bp, bok := s.Intersect(ray, true)
		lt, lp, lok := s.Intersect(ray, false)

		if bok != lok {
			t.Fatalf("BVH/linear disagree on hit/miss for ray %v", ray)
		}
		if bok && bp != lp {
			t.Errorf("BVH/linear disagree on hit primitive for ray %v", ray)
		}
		if bok && ((bt-lt) > 1e-6 || (lt-bt) > 1e-6) {
			t.Errorf("BVH/linear disagree on t for ray %v: %v vs %v", ray, bt, lt)
		}
	}
}

func TestSceneBVHDeterministicGivenSeed(t *testing.T) {
	build := func() []bool {
		s := NewScene(types.XYZ(0, 0, 0))
		mat := DefaultMaterial()
		s.AddMaterial(&mat)
		s.SetBVHSeed(99)

		rng := rand.New(rand.NewSource(2))
		for i := 0; i < 20; i++ {
			center := types.XYZ(rng.Float64()*10, rng.Float64()*10, rng.Float64()*10)
			s.AddPrimitive(NewSphere(center, 1, &mat))
		}

		results := make([]bool, 50)
		rng2 := rand.New(rand.NewSource(3))
		for i := range results {
			origin := types.XYZ(rng2.Float64()*20-10, rng2.Float64()*20-10, rng2.Float64()*20-10)
			dir := types.XYZ(rng2.Float64()*2-1, rng2.Float64()*2-1, rng2.Float64()*2-1)
			_, _, ok := s.Intersect(types.NewRay(origin, dir), true)
			results[i] = ok
		}
		return results
	}

	a := build()
	b := build()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected deterministic BVH results given a fixed seed, differed at index %d", i)
		}
	}
}
