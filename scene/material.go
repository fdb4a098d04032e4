package scene

import "github.com/achilleasa/scenedesc/types"

// Texture is implemented by Constant and Image.
type Texture interface {
	Type() TextureType
	isTexture()
}

// A single colour applied across the surface.
type Constant struct {
	Colour types.Vec3
}

func (Constant) Type() TextureType { return ConstantTexture }
func (Constant) isTexture()        {}

// An image texture. Filename is relative to the scene document and is
// resolved by the consumer.
type Image struct {
	Filename string
}

func (Image) Type() TextureType { return ImageTexture }
func (Image) isTexture()        {}

// A Material names the scattering model used for an object surface. Only
// diffuse materials carry a texture.
type Material struct {
	Name    string
	Type    MaterialType
	Texture Texture
}

func (m Material) EntityName() string     { return m.Name }
func (m Material) Collection() Collection { return Materials }
