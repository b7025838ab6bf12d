package quote

import "github.com/rentvehicle/rentkit/pkg/money"

// AddOnKind tags one optional service that can wrap a quote.
type AddOnKind string

const (
	AddOnInsurance AddOnKind = "insurance"
	AddOnDriver    AddOnKind = "driver"
	AddOnGPS       AddOnKind = "gps"
	AddOnChildSeat AddOnKind = "child_seat"
)

type addOnSpec struct {
	name      string
	surcharge money.Amount
}

// Surcharges are flat amounts per booking; they do not scale with duration.
var addOnSpecs = map[AddOnKind]addOnSpec{
	AddOnInsurance: {name: "Asuransi", surcharge: 50000},
	AddOnDriver:    {name: "Supir", surcharge: 100000},
	AddOnGPS:       {name: "GPS", surcharge: 25000},
	AddOnChildSeat: {name: "Kursi Anak", surcharge: 30000},
}

// AddOnKinds returns the selectable kinds in menu order.
func AddOnKinds() []AddOnKind {
	return []AddOnKind{AddOnInsurance, AddOnDriver, AddOnGPS, AddOnChildSeat}
}

// Valid reports whether k names a known add-on.
func (k AddOnKind) Valid() bool {
	_, ok := addOnSpecs[k]
	return ok
}

// Name is the display name appended to quote descriptions, without the
// separator. Unknown kinds return an empty string.
func (k AddOnKind) Name() string {
	return addOnSpecs[k].name
}

// Surcharge is the flat fee the kind adds to a quote. Unknown kinds return
// zero.
func (k AddOnKind) Surcharge() money.Amount {
	return addOnSpecs[k].surcharge
}

// WithAddOn layers one add-on over an inner quote. Wrappers exclusively own
// their inner quote; sharing an inner quote between two wrappers is not
// supported.
type WithAddOn struct {
	inner Quote
	kind  AddOnKind
}

// Wrap layers kind over q.
func Wrap(q Quote, kind AddOnKind) (*WithAddOn, error) {
	if q == nil {
		return nil, ErrNilQuote
	}
	if !kind.Valid() {
		return nil, ErrUnknownAddOn
	}
	return &WithAddOn{inner: q, kind: kind}, nil
}

// Cost is the inner cost plus this add-on's surcharge.
func (w *WithAddOn) Cost() money.Amount {
	return w.inner.Cost() + w.kind.Surcharge()
}

// Description is the inner description with this add-on's name appended.
func (w *WithAddOn) Description() string {
	return w.inner.Description() + " + " + w.kind.Name()
}

// Kind returns which add-on this layer applies.
func (w *WithAddOn) Kind() AddOnKind {
	return w.kind
}
