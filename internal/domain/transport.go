package domain

// TransportType names how the traveller gets from one schedule item to the
// next item of the same day. The zero value means "not set".
type TransportType string

const (
	TransportWalk    TransportType = "walk"
	TransportCar     TransportType = "car"
	TransportTrain   TransportType = "train"
	TransportBus     TransportType = "bus"
	TransportPlane   TransportType = "plane"
	TransportShip    TransportType = "ship"
	TransportBicycle TransportType = "bicycle"
	TransportTaxi    TransportType = "taxi"
	TransportOther   TransportType = "other"
)

// TransportTypes lists every valid mode in display order.
var TransportTypes = []TransportType{
	TransportWalk,
	TransportCar,
	TransportTrain,
	TransportBus,
	TransportPlane,
	TransportShip,
	TransportBicycle,
	TransportTaxi,
	TransportOther,
}

var transportIcons = map[TransportType]string{
	TransportWalk:    "🚶",
	TransportCar:     "🚗",
	TransportTrain:   "🚃",
	TransportBus:     "🚌",
	TransportPlane:   "✈️",
	TransportShip:    "🚢",
	TransportBicycle: "🚴",
	TransportTaxi:    "🚕",
	TransportOther:   "➡️",
}

var transportLabels = map[TransportType]string{
	TransportWalk:    "徒歩",
	TransportCar:     "車",
	TransportTrain:   "電車",
	TransportBus:     "バス",
	TransportPlane:   "飛行機",
	TransportShip:    "船",
	TransportBicycle: "自転車",
	TransportTaxi:    "タクシー",
	TransportOther:   "その他",
}

// Valid reports whether t is one of the known modes.
func (t TransportType) Valid() bool {
	_, ok := transportIcons[t]
	return ok
}

// Icon returns the emoji shown next to the mode, or "" for unknown modes.
func (t TransportType) Icon() string {
	return transportIcons[t]
}

// Label returns the display label of the mode, or "" for unknown modes.
func (t TransportType) Label() string {
	return transportLabels[t]
}
