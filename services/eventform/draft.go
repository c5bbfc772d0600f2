package eventform

// Location is the structured venue field of an event draft.
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// EquipmentItem is one entry of the equipment list.
type EquipmentItem struct {
	Item     string `json:"item"`
	Required bool   `json:"required"`
}

// Draft is the in-progress event form state: created empty for a new event
// or hydrated from a persisted event when editing, mutated field by field,
// then submitted as a single payload and discarded. Rules and equipment
// keep insertion order, allow duplicates and are removed by index.
type Draft struct {
	Name            string
	Category        string
	Description     string
	Date            string
	Time            string
	Location        Location
	MaxParticipants int
	RegistrationFee float64
	Difficulty      string
	EventType       string
	Rules           []string
	Equipment       []EquipmentItem
	Images          ImageSet

	// revalidate runs after every list or image mutation, so business
	// rules that depend on list state have a deterministic hook point.
	revalidate func(*Draft)
}

// NewDraft returns an empty draft for the create flow.
func NewDraft() *Draft {
	return &Draft{EventType: "casual"}
}

// SetRevalidateHook installs the function invoked after each mutation.
func (d *Draft) SetRevalidateHook(fn func(*Draft)) {
	d.revalidate = fn
}

func (d *Draft) notify() {
	if d.revalidate != nil {
		d.revalidate(d)
	}
}

// Dispose releases every transient resource the draft holds (pending image
// previews). Call it when the form goes away without submitting.
func (d *Draft) Dispose() {
	d.Images.Dispose()
}
