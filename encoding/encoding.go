// Package encoding serializes string-labeled models with CBOR. Rationals
// travel in their exact p/q text form, so a round trip never loses
// precision. Encoding is canonical: equal models encode to equal bytes.
package encoding

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/lowprev/credal/desir"
	"github.com/lowprev/credal/gamble"
	"github.com/lowprev/credal/massfunc"
	"github.com/lowprev/credal/vector"
)

var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// A gamble or mass function travels as a label→rational-text map; cones
// and sets nest from there.
type (
	vectorWire map[string]string
	coneWire   []vectorWire
)

// MarshalGamble encodes a gamble.
func MarshalGamble(f gamble.Gamble[string]) ([]byte, error) {
	return encMode.Marshal(vectorToWire(f.Vector))
}

// UnmarshalGamble decodes a gamble.
func UnmarshalGamble(data []byte) (gamble.Gamble[string], error) {
	var w vectorWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return gamble.Gamble[string]{}, err
	}
	v, err := wireToVector(w)
	if err != nil {
		return gamble.Gamble[string]{}, err
	}
	return gamble.FromVector(v), nil
}

// MarshalCredalSet encodes a credal set as the list of its members.
func MarshalCredalSet(k *massfunc.CredalSet[string]) ([]byte, error) {
	w := make(coneWire, 0, k.Len())
	for _, p := range k.Members() {
		w = append(w, vectorToWire(p.Vector()))
	}
	return encMode.Marshal(w)
}

// UnmarshalCredalSet decodes a credal set.
func UnmarshalCredalSet(data []byte) (*massfunc.CredalSet[string], error) {
	var w coneWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	k := massfunc.NewCredalSet[string]()
	for _, pw := range w {
		v, err := wireToVector(pw)
		if err != nil {
			return nil, err
		}
		p, err := massfunc.FromVector(v)
		if err != nil {
			return nil, err
		}
		k.Add(p)
	}
	return k, nil
}

// MarshalDesirSet encodes a desirability set as the list of its cones, each
// the list of its generator rays.
func MarshalDesirSet(d *desir.DesirSet[string]) ([]byte, error) {
	w := make([]coneWire, 0, d.Len())
	for _, c := range d.Cones() {
		cw := make(coneWire, 0, c.Len())
		for _, r := range c.Rays() {
			cw = append(cw, vectorToWire(r.Gamble().Vector))
		}
		w = append(w, cw)
	}
	return encMode.Marshal(w)
}

// UnmarshalDesirSet decodes a desirability set.
func UnmarshalDesirSet(data []byte) (*desir.DesirSet[string], error) {
	var w []coneWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	d := desir.New[string]()
	for _, cw := range w {
		gs := make([]gamble.Gamble[string], 0, len(cw))
		for _, rw := range cw {
			v, err := wireToVector(rw)
			if err != nil {
				return nil, err
			}
			gs = append(gs, gamble.FromVector(v))
		}
		if err := d.AddGambles(gs...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func vectorToWire(v vector.Vector[string]) vectorWire {
	w := make(vectorWire, v.Len())
	for x := range v.Domain() {
		w[x] = v.Value(x).RatString()
	}
	return w
}

func wireToVector(w vectorWire) (vector.Vector[string], error) {
	m := make(map[string]*big.Rat, len(w))
	for x, s := range w {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return vector.Vector[string]{}, fmt.Errorf("label %q: invalid rational %q", x, s)
		}
		m[x] = r
	}
	return vector.FromRats(m), nil
}
