package renderer

import (
	"testing"

	"github.com/david14higgins/Pathtracer/scene"
	"github.com/david14higgins/Pathtracer/types"
)

func TestShadeBinaryHitAndMiss(t *testing.T) {
	sc := scene.NewScene(types.Vec3{})
	mat := scene.DefaultMaterial()
	sc.AddMaterial(&mat)
	sc.AddPrimitive(scene.NewSphere(types.XYZ(0, 0, -5), 1, &mat))

	hitRay := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1))
	if got := shadeBinary(sc, hitRay, false); got != types.XYZ(1, 0, 0) {
		t.Errorf("expected red on hit, got %v", got)
	}

	missRay := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0))
	if got := shadeBinary(sc, missRay, false); got != (types.Vec3{}) {
		t.Errorf("expected black on miss, got %v", got)
	}
}

func TestClosestHitDerivesPointAndNormal(t *testing.T) {
	sc := scene.NewScene(types.Vec3{})
	mat := scene.DefaultMaterial()
	sc.AddMaterial(&mat)
	sc.AddPrimitive(scene.NewSphere(types.XYZ(0, 0, -5), 1, &mat))

	ray := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1))
	hit, ok := closestHit(sc, ray, false)
	if !ok {
		t.Fatal("expected a hit")
	}
	wantPoint := types.XYZ(0, 0, -4)
	if d := hit.point.Sub(wantPoint).Len(); d > 1e-6 {
		t.Errorf("expected hit point near %v, got %v", wantPoint, hit.point)
	}
	wantNormal := types.XYZ(0, 0, 1)
	if d := hit.normal.Sub(wantNormal).Len(); d > 1e-6 {
		t.Errorf("expected normal %v, got %v", wantNormal, hit.normal)
	}
}
