package renderer

import (
	"math"
	"math/rand"

	"github.com/david14higgins/Pathtracer/scene"
	"github.com/david14higgins/Pathtracer/types"
)

const phongAreaLightSamples = 16

// shadePhong renders Blinn-Phong direct lighting with recursive
// reflection and Snell refraction.
func shadePhong(sc *scene.Scene, ray types.Ray, depth int, opts Options, rng *rand.Rand) types.Vec3 {
	hit, ok := closestHit(sc, ray, opts.UseBVH)
	if !ok {
		return sc.BgColor
	}

	mat := hit.prim.Mat()
	u, v := hit.prim.UV(hit.point)
	baseColor := mat.BaseColor(u, v)

	ambient := baseColor.Scale(0.5)
	view := ray.Direction.Negate()

	color := ambient.Add(directPhongLighting(sc, hit, mat, view, opts, rng))

	if mat.IsReflective && depth < opts.NumBounces {
		r := ray.Direction.Reflect(hit.normal)
		reflected := shadePhong(sc, types.NewRay(types.Biased(hit.point, r, shadowBias), r), depth+1, opts, rng)
		color = color.Scale(1 - mat.Reflectivity).Add(reflected.Scale(mat.Reflectivity))
	}

	if mat.IsRefractive && depth < opts.NumBounces {
		n := hit.normal
		cosI := n.Dot(ray.Direction)
		etaFrom, etaTo := 1.0, mat.RefractiveIndex
		if cosI > 0 {
			n = n.Negate()
			etaFrom, etaTo = mat.RefractiveIndex, 1.0
		}
		if refracted, ok := refract(ray.Direction, n, etaFrom, etaTo); ok {
			refractedColor := shadePhong(sc, types.NewRay(types.Biased(hit.point, refracted, shadowBias), refracted), depth+1, opts, rng)
			// Intentionally blends the refracted contribution with
			// Reflectivity rather than (1-Reflectivity).
			color = color.Scale(1 - mat.Reflectivity).Add(refractedColor.Scale(mat.Reflectivity))
		}
	}

	return types.XYZ(clamp01(color.X), clamp01(color.Y), clamp01(color.Z))
}

// directPhongLighting sums the diffuse and specular contribution of every
// light, sampling area lights phongAreaLightSamples times and skipping
// shadowed samples.
func directPhongLighting(sc *scene.Scene, hit hitInfo, mat *scene.Material, view types.Vec3, opts Options, rng *rand.Rand) types.Vec3 {
	total := types.Vec3{}
	for _, light := range sc.Lights {
		for _, s := range light.Sample(phongAreaLightSamples, rng) {
			ldirFull := s.Point.Sub(hit.point)
			dist := ldirFull.Len()
			if dist == 0 {
				continue
			}
			ldir := ldirFull.Scale(1 / dist)

			shadowRay := types.NewRay(types.Biased(hit.point, ldir, shadowBias), ldir)
			if sc.IntersectShadow(shadowRay, dist, opts.UseBVH) {
				continue
			}

			attenuation := 1.0
			if light.Kind == scene.AreaLight {
				attenuation = 1 / (dist * dist)
			}

			ndotl := hit.normal.Dot(ldir)
			if ndotl < 0 {
				ndotl = 0
			}
			diffuse := mat.DiffuseColor.Scale(mat.Kd * ndotl).Mul(light.Intensity).Scale(attenuation)

			h := view.Add(ldir).Normalize()
			ndoth := hit.normal.Dot(h)
			if ndoth < 0 {
				ndoth = 0
			}
			spec := mat.SpecularColor.Scale(mat.Ks * math.Pow(ndoth, mat.SpecularExponent)).Mul(light.Intensity).Scale(attenuation)

			total = total.Add(diffuse.Add(spec).Scale(s.Weight))
		}
	}
	return total
}

// refract computes the Snell-refracted direction for an incident unit
// vector d hitting a surface with outward normal n, passing from a medium
// of index etaFrom into one of index etaTo. Returns ok=false on total
// internal reflection.
func refract(d, n types.Vec3, etaFrom, etaTo float64) (types.Vec3, bool) {
	cosI := -n.Dot(d)
	if cosI < 0 {
		cosI = -cosI
		n = n.Negate()
	}
	eta := etaFrom / etaTo

	sin2T := eta * eta * (1 - cosI*cosI)
	if sin2T > 1 {
		return types.Vec3{}, false
	}
	cosT := math.Sqrt(1 - sin2T)
	refracted := d.Scale(eta).Add(n.Scale(eta*cosI - cosT))
	return refracted.Normalize(), true
}

// schlickFresnel approximates the Fresnel reflectance at incidence angle
// arccos(cosI) between two media of the given refractive indices.
func schlickFresnel(cosI, etaFrom, etaTo float64) float64 {
	r0 := (etaFrom - etaTo) / (etaFrom + etaTo)
	r0 *= r0
	x := 1 - cosI
	return r0 + (1-r0)*x*x*x*x*x
}
