package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type PlanetTag struct{}

var PlanetTagComponent = NewComponent[PlanetTag]()

type MoonTag struct{}

var MoonTagComponent = NewComponent[MoonTag]()

// DeepSpaceTag marks entities drawn only while the camera is in deep space.
type DeepSpaceTag struct{}

var DeepSpaceTagComponent = NewComponent[DeepSpaceTag]()
