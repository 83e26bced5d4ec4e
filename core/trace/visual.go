package trace

import "encoding/json"

type VisualType string

const (
	VisualTypeImage VisualType = "image"
	VisualTypeAPL   VisualType = "apl"
)

type DeviceType string

const (
	DeviceMobile       DeviceType = "mobile"
	DeviceTablet       DeviceType = "tablet"
	DeviceDesktop      DeviceType = "desktop"
	DeviceSmartWatch   DeviceType = "smart_watch"
	DeviceTelevision   DeviceType = "television"
	DeviceInCarDisplay DeviceType = "in_car_display"
	DeviceEchoSpot     DeviceType = "echo_spot"
	DeviceEchoShow8    DeviceType = "echo_show_8"
	DeviceEchoShow10   DeviceType = "echo_show_10"
	DeviceFireHD6      DeviceType = "fire_hd_6"
	DeviceFireHD8      DeviceType = "fire_hd_8"
	DeviceFireHD10     DeviceType = "fire_hd_10"
	DeviceFireTVCube   DeviceType = "fire_tv_cube"
	DeviceGoogleNest   DeviceType = "google_nest_hub"
)

type CanvasVisibility string

const (
	CanvasVisibilityFull    CanvasVisibility = "full"
	CanvasVisibilityCropped CanvasVisibility = "cropped"
	CanvasVisibilityHidden  CanvasVisibility = "hidden"
)

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type VisualTrace struct {
	Payload VisualPayload `json:"payload"`
}

// VisualPayload covers both visual subtypes. Image fields are set for
// VisualTypeImage, APL fields for VisualTypeAPL.
type VisualPayload struct {
	VisualType VisualType `json:"visualType" jsonschema:"enum=image,enum=apl"`

	Image            string           `json:"image,omitempty"`
	Device           DeviceType       `json:"device,omitempty"`
	Dimensions       *Dimensions      `json:"dimensions,omitempty"`
	CanvasVisibility CanvasVisibility `json:"canvasVisibility,omitempty" jsonschema:"enum=full,enum=cropped,enum=hidden"`

	Title        string          `json:"title,omitempty"`
	APLType      string          `json:"aplType,omitempty"`
	ImageURL     string          `json:"imageURL,omitempty"`
	Document     string          `json:"document,omitempty"`
	Datasource   string          `json:"datasource,omitempty"`
	APLCommands  json.RawMessage `json:"aplCommands,omitempty"`
	JSONFileName string          `json:"jsonFileName,omitempty"`
}

func (VisualTrace) Type() Type { return TypeVisual }
