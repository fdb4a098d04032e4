package scene

// A View binds a camera to the render settings used for a single render job.
type View struct {
	Name string

	// Name of the camera in the cameras collection.
	Camera string

	Samples    uint32
	Depth      uint32
	Integrator IntegratorType
	Renderer   RendererType
}

func (v View) EntityName() string     { return v.Name }
func (v View) Collection() Collection { return Views }
