package scene

// A Collection identifies one of the five named sections of a scene.
type Collection string

// The scene collections in the order they are decoded.
const (
	Cameras   Collection = "cameras"
	Views     Collection = "views"
	Objects   Collection = "objects"
	Materials Collection = "materials"
	Lights    Collection = "lights"
)

// AllCollections lists the collections in decoding order.
var AllCollections = []Collection{Cameras, Views, Objects, Materials, Lights}

// Returns true if c names a known collection.
func (c Collection) Valid() bool {
	for _, known := range AllCollections {
		if c == known {
			return true
		}
	}
	return false
}

type CameraType uint8

const (
	PerspectiveCamera CameraType = iota
)

var cameraTypeNames = []string{"Perspective"}

func (t CameraType) String() string { return cameraTypeNames[t] }

// Parse a camera type name.
func ParseCameraType(name string) (CameraType, bool) {
	idx, ok := lookupKind(cameraTypeNames, name)
	return CameraType(idx), ok
}

// CameraTypeNames returns the supported camera type names.
func CameraTypeNames() []string { return clone(cameraTypeNames) }

type IntegratorType uint8

const (
	PathIntegrator IntegratorType = iota
	WhittedIntegrator
)

var integratorTypeNames = []string{"Path", "Whitted"}

func (t IntegratorType) String() string { return integratorTypeNames[t] }

// Parse an integrator name.
func ParseIntegratorType(name string) (IntegratorType, bool) {
	idx, ok := lookupKind(integratorTypeNames, name)
	return IntegratorType(idx), ok
}

// IntegratorTypeNames returns the supported integrator names.
func IntegratorTypeNames() []string { return clone(integratorTypeNames) }

type RendererType uint8

const (
	StandardRenderer RendererType = iota
)

var rendererTypeNames = []string{"Standard"}

func (t RendererType) String() string { return rendererTypeNames[t] }

// Parse a renderer name.
func ParseRendererType(name string) (RendererType, bool) {
	idx, ok := lookupKind(rendererTypeNames, name)
	return RendererType(idx), ok
}

// RendererTypeNames returns the supported renderer names.
func RendererTypeNames() []string { return clone(rendererTypeNames) }

type ShapeKind uint8

const (
	BallShape ShapeKind = iota
	CuboidShape
)

var shapeKindNames = []string{"Ball", "Cuboid"}

func (k ShapeKind) String() string { return shapeKindNames[k] }

// Parse a shape name.
func ParseShapeKind(name string) (ShapeKind, bool) {
	idx, ok := lookupKind(shapeKindNames, name)
	return ShapeKind(idx), ok
}

// ShapeKindNames returns the supported shape names.
func ShapeKindNames() []string { return clone(shapeKindNames) }

type MaterialType uint8

const (
	MirrorMaterial MaterialType = iota
	GlassMaterial
	DiffuseMaterial
)

var materialTypeNames = []string{"Mirror", "Glass", "Diffuse"}

func (t MaterialType) String() string { return materialTypeNames[t] }

// Parse a material type name.
func ParseMaterialType(name string) (MaterialType, bool) {
	idx, ok := lookupKind(materialTypeNames, name)
	return MaterialType(idx), ok
}

// MaterialTypeNames returns the supported material type names.
func MaterialTypeNames() []string { return clone(materialTypeNames) }

type TextureType uint8

const (
	ConstantTexture TextureType = iota
	ImageTexture
)

var textureTypeNames = []string{"Constant", "Image"}

func (t TextureType) String() string { return textureTypeNames[t] }

// Parse a texture type name.
func ParseTextureType(name string) (TextureType, bool) {
	idx, ok := lookupKind(textureTypeNames, name)
	return TextureType(idx), ok
}

// TextureTypeNames returns the supported texture type names.
func TextureTypeNames() []string { return clone(textureTypeNames) }

type LightType uint8

const (
	PointLight LightType = iota
	DirectionalLight
)

var lightTypeNames = []string{"Point", "Directional"}

func (t LightType) String() string { return lightTypeNames[t] }

// Parse a light type name.
func ParseLightType(name string) (LightType, bool) {
	idx, ok := lookupKind(lightTypeNames, name)
	return LightType(idx), ok
}

// LightTypeNames returns the supported light type names.
func LightTypeNames() []string { return clone(lightTypeNames) }

// Names are matched case-sensitively.
func lookupKind(names []string, name string) (int, bool) {
	for idx, candidate := range names {
		if candidate == name {
			return idx, true
		}
	}
	return 0, false
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}
