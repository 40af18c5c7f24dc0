// Package scenefile decodes the JSON scene description format into the
// rendering core's scene.Scene and scene.Camera types via a single
// Load(path) entry point.
package scenefile

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/david14higgins/Pathtracer/asset"
	"github.com/david14higgins/Pathtracer/asset/texture"
	"github.com/david14higgins/Pathtracer/log"
	"github.com/david14higgins/Pathtracer/scene"
	"github.com/david14higgins/Pathtracer/types"
)

var logger = log.New("scenefile")

// Document is the root of a scene JSON file.
type Document struct {
	NBounces   int        `json:"nbounces"`
	RenderMode string     `json:"rendermode"`
	Camera     cameraDoc  `json:"camera"`
	Scene      sceneDoc   `json:"scene"`
}

type cameraDoc struct {
	Type          string     `json:"type"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	Position      [3]float64 `json:"position"`
	LookAt        [3]float64 `json:"lookAt"`
	UpVector      [3]float64 `json:"upVector"`
	FOV           float64    `json:"fov"`
	Exposure      float64    `json:"exposure"`
	Aperture      float64    `json:"aperture"`
	FocalDistance float64    `json:"focalDistance"`
}

type sceneDoc struct {
	BackgroundColor [3]float64 `json:"backgroundcolor"`
	LightSources    []lightDoc `json:"lightsources"`
	Shapes          []shapeDoc `json:"shapes"`
}

type lightDoc struct {
	Type      string     `json:"type"`
	Position  [3]float64 `json:"position"`
	Intensity [3]float64 `json:"intensity"`
	UAxis     [3]float64 `json:"u_axis"`
	VAxis     [3]float64 `json:"v_axis"`
}

type shapeDoc struct {
	Type string `json:"type"`

	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`

	Axis   [3]float64 `json:"axis"`
	Height float64    `json:"height"`

	V0 [3]float64 `json:"v0"`
	V1 [3]float64 `json:"v1"`
	V2 [3]float64 `json:"v2"`

	Material materialDoc `json:"material"`
}

type materialDoc struct {
	Ks               float64    `json:"ks"`
	Kd               float64    `json:"kd"`
	SpecularExponent float64    `json:"specularexponent"`
	DiffuseColor     [3]float64 `json:"diffusecolor"`
	SpecularColor    [3]float64 `json:"specularcolor"`
	IsReflective     bool       `json:"isreflective"`
	Reflectivity     float64    `json:"reflectivity"`
	IsRefractive     bool       `json:"isrefractive"`
	RefractiveIndex  float64    `json:"refractiveindex"`
	HasTexture       bool       `json:"hasTexture"`
	TextureFilename  string     `json:"textureFilename"`
}

// Result is the decoded form of a scene file, ready to hand to a Renderer.
type Result struct {
	Scene      *scene.Scene
	Camera     *scene.Camera
	NumBounces int
	RenderMode string
}

// vec converts a JSON [3]float64 triple into a types.Vec3.
func vec(a [3]float64) types.Vec3 {
	return types.XYZ(a[0], a[1], a[2])
}

// Load reads and decodes a scene file.
func Load(path string) (*Result, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	defer res.Close()

	data, err := ioutil.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenefile: invalid JSON in %s: %w", path, err)
	}

	sc := scene.NewScene(vec(doc.Scene.BackgroundColor))

	for _, ld := range doc.Scene.LightSources {
		switch ld.Type {
		case "pointlight":
			sc.AddLight(scene.NewPointLight(vec(ld.Position), vec(ld.Intensity)))
		case "arealight":
			sc.AddLight(scene.NewAreaLight(vec(ld.Position), vec(ld.Intensity), vec(ld.UAxis), vec(ld.VAxis)))
		default:
			return nil, fmt.Errorf("scenefile: unknown light type %q", ld.Type)
		}
	}

	for _, sd := range doc.Scene.Shapes {
		mat := materialFromDoc(sd.Material)
		if err := sc.AddMaterial(mat); err != nil {
			return nil, fmt.Errorf("scenefile: %w", err)
		}

		var prim scene.Shape
		switch sd.Type {
		case "sphere":
			prim = scene.NewSphere(vec(sd.Center), sd.Radius, mat)
		case "cylinder":
			prim = scene.NewCylinder(vec(sd.Center), vec(sd.Axis), sd.Radius, sd.Height, mat)
		case "triangle":
			prim = scene.NewTriangle(vec(sd.V0), vec(sd.V1), vec(sd.V2), mat)
		default:
			return nil, fmt.Errorf("scenefile: unknown shape type %q", sd.Type)
		}
		if err := sc.AddPrimitive(prim); err != nil {
			return nil, fmt.Errorf("scenefile: %w", err)
		}
	}

	cam, err := cameraFromDoc(doc.Camera)
	if err != nil {
		return nil, err
	}

	logger.Infof("loaded scene %s: %d primitives, %d lights", path, len(sc.Primitives), len(sc.Lights))

	return &Result{
		Scene:      sc,
		Camera:     cam,
		NumBounces: doc.NBounces,
		RenderMode: doc.RenderMode,
	}, nil
}

func materialFromDoc(md materialDoc) *scene.Material {
	mat := scene.DefaultMaterial()
	mat.Ks = md.Ks
	mat.Kd = md.Kd
	mat.SpecularExponent = md.SpecularExponent
	mat.DiffuseColor = vec(md.DiffuseColor)
	mat.SpecularColor = vec(md.SpecularColor)
	mat.IsReflective = md.IsReflective
	mat.Reflectivity = md.Reflectivity
	mat.IsRefractive = md.IsRefractive
	if md.RefractiveIndex != 0 {
		mat.RefractiveIndex = md.RefractiveIndex
	}
	mat.HasTexture = md.HasTexture
	if md.HasTexture && md.TextureFilename != "" {
		tex, err := texture.Load(md.TextureFilename)
		if err != nil {
			logger.Warningf("could not load texture %s: %s", md.TextureFilename, err)
		} else {
			mat.Texture = tex
		}
	}
	return &mat
}

func cameraFromDoc(cd cameraDoc) (*scene.Camera, error) {
	kind := scene.Pinhole
	switch cd.Type {
	case "", "pinhole":
		kind = scene.Pinhole
	case "thinlens":
		kind = scene.ThinLens
	default:
		return nil, fmt.Errorf("scenefile: unknown camera type %q", cd.Type)
	}

	cam := scene.NewCamera(kind, cd.Width, cd.Height, vec(cd.Position), vec(cd.LookAt), vec(cd.UpVector), cd.FOV)
	cam.Exposure = cd.Exposure
	cam.Aperture = cd.Aperture
	cam.FocalDistance = cd.FocalDistance
	return cam, nil
}
