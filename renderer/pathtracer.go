package renderer

import (
	"math"
	"math/rand"

	"github.com/david14higgins/Pathtracer/scene"
	"github.com/david14higgins/Pathtracer/types"
)

const (
	pathAreaLightSamples = 16
	rouletteSurvival     = 0.9
)

// tracePath runs Monte Carlo path tracing with direct lighting,
// cosine-weighted indirect bounces, Fresnel-weighted reflection/refraction
// and Russian-roulette depth limiting. Both a miss and hitting the depth
// cap return the background color, treating it as an environment
// emitter.
func tracePath(sc *scene.Scene, ray types.Ray, depth int, opts Options, rng *rand.Rand) types.Vec3 {
	if depth >= opts.NumBounces {
		return sc.BgColor
	}

	hit, ok := closestHit(sc, ray, opts.UseBVH)
	if !ok {
		return sc.BgColor
	}

	mat := hit.prim.Mat()
	u, v := hit.prim.UV(hit.point)
	baseColor := mat.BaseColor(u, v)

	rrActive := opts.MinBouncesForRR > 0 && depth >= opts.MinBouncesForRR
	if rrActive && rng.Float64() > rouletteSurvival {
		return baseColor.Scale(1 - rouletteSurvival)
	}

	direct := directPathLighting(sc, hit, opts, rng)

	wi := cosineSampleHemisphere(hit.normal, rng)
	indirectRay := types.NewRay(types.Biased(hit.point, wi, shadowBias), wi)
	indirect := tracePath(sc, indirectRay, depth+1, opts, rng)
	cosTheta := hit.normal.Dot(wi)
	if cosTheta < 0 {
		cosTheta = 0
	}

	result := baseColor.Mul(direct.Add(indirect.Scale(cosTheta)))

	if mat.IsReflective || mat.IsRefractive {
		result = result.Add(fresnelContribution(sc, hit, ray, mat, depth, opts, rng))
	}

	if rrActive {
		result = result.Scale(1 / rouletteSurvival)
	}

	return result
}

// directPathLighting sums unshadowed light contributions at a hit point,
// weighted by max(0, n.ldir) and attenuation.
func directPathLighting(sc *scene.Scene, hit hitInfo, opts Options, rng *rand.Rand) types.Vec3 {
	total := types.Vec3{}
	for _, light := range sc.Lights {
		for _, s := range light.Sample(pathAreaLightSamples, rng) {
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
			total = total.Add(light.Intensity.Scale(ndotl * attenuation * s.Weight))
		}
	}
	return total
}

// fresnelContribution computes the reflected (and, if refractive, the
// refracted) indirect contribution, weighted by a Schlick Fresnel term.
func fresnelContribution(sc *scene.Scene, hit hitInfo, ray types.Ray, mat *scene.Material, depth int, opts Options, rng *rand.Rand) types.Vec3 {
	normal := hit.normal
	cosI := normal.Dot(ray.Direction)
	etaFrom, etaTo := 1.0, mat.RefractiveIndex
	n := normal
	if cosI > 0 {
		n = normal.Negate()
		etaFrom, etaTo = mat.RefractiveIndex, 1.0
	} else {
		cosI = -cosI
	}
	fresnel := schlickFresnel(cosI, etaFrom, etaTo)

	reflectedDir := ray.Direction.Reflect(normal)
	reflected := tracePath(sc, types.NewRay(types.Biased(hit.point, reflectedDir, shadowBias), reflectedDir), depth+1, opts, rng)

	if !mat.IsRefractive {
		return reflected.Scale(fresnel)
	}

	refractedDir, ok := refract(ray.Direction, n, etaFrom, etaTo)
	if !ok {
		// total internal reflection: all energy goes to the reflected ray.
		return reflected
	}

	refracted := tracePath(sc, types.NewRay(types.Biased(hit.point, refractedDir, shadowBias), refractedDir), depth+1, opts, rng)
	return reflected.Scale(fresnel).Add(refracted.Scale(1 - fresnel))
}

// cosineSampleHemisphere draws a unit direction over the hemisphere around
// n with density proportional to cosine of the polar angle.
func cosineSampleHemisphere(n types.Vec3, rng *rand.Rand) types.Vec3 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	r := math.Sqrt(1 - u1*u1)
	phi := 2 * math.Pi * u2

	tangent := types.XYZ(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		tangent = types.XYZ(0, 1, 0)
	}
	bitangent := n.Cross(tangent).Normalize()
	tangent = bitangent.Cross(n)

	return tangent.Scale(r * math.Cos(phi)).Add(bitangent.Scale(r * math.Sin(phi))).Add(n.Scale(u1)).Normalize()
}
