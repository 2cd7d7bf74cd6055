package routing

import (
	"github.com/iti/rngstream"
	"golang.org/x/exp/slices"
)

// Names of the bidirectional torus routing functions.
const (
	DimOrderTorus    = "dim_order_torus"
	DimOrderNITorus  = "dim_order_ni_torus"
	DimOrderBalTorus = "dim_order_bal_torus"
	MinAdaptTorus    = "min_adapt_torus"
	ValiantTorus     = "valiant_torus"
	ValiantNITorus   = "valiant_ni_torus"
	ChaosTorus       = "chaos_torus"
)

// TorusFunctionNames lists the bidirectional torus routing family.
var TorusFunctionNames = []string{
	DimOrderTorus,
	DimOrderNITorus,
	DimOrderBalTorus,
	MinAdaptTorus,
	ValiantTorus,
	ValiantNITorus,
	ChaosTorus,
}

// RegisterTorusFunctions registers the bidirectional torus family.
//
// Output ports follow the bidirectional torus layout: port 2d leaves in the
// positive direction of dimension d, port 2d+1 in the negative direction,
// and port 2n ejects to the local node.
func RegisterTorusFunctions(r *Registry) error {
	funcs := map[string]Func{
		DimOrderTorus:    dimOrderTorus,
		DimOrderNITorus:  dimOrderNITorus,
		DimOrderBalTorus: dimOrderBalTorus,
		MinAdaptTorus:    minAdaptTorus,
		ValiantTorus:     valiantTorus,
		ValiantNITorus:   valiantNITorus,
		ChaosTorus:       chaosTorus,
	}

	for _, name := range TorusFunctionNames {
		if err := r.Register(name, funcs[name]); err != nil {
			return err
		}
	}

	return nil
}

// PickIntermediate draws a uniformly random Valiant intermediate coordinate.
func PickIntermediate(rng *rngstream.RngStream, k, n int) []int {
	coord := make([]int, n)

	for d := range coord {
		digit := int(rng.RandU01() * float64(k))
		if digit >= k {
			digit = k - 1
		}

		coord[d] = digit
	}

	return coord
}

func dimOrderTorus(req Request) []Output {
	port, ok := dimOrderPort(req.K, req.Current, req.Dest)
	if !ok {
		port = ejectPort(req)
	}

	return []Output{{Port: port, VCStart: 0, VCEnd: numVCs(req) - 1}}
}

func dimOrderNITorus(req Request) []Output {
	port, ok := dimOrderPort(req.K, req.Current, req.Dest)
	if !ok {
		port = ejectPort(req)
	}

	vc := nodeID(req.K, req.Dest) % numVCs(req)

	return []Output{{Port: port, VCStart: vc, VCEnd: vc}}
}

// dimOrderBalTorus keeps hops that do not wrap around on the lower half of the
// virtual channels and hops that wrap on the upper half.
func dimOrderBalTorus(req Request) []Output {
	d, ok := firstDiffDim(req.Current, req.Dest)
	if !ok {
		return []Output{{Port: ejectPort(req), VCEnd: numVCs(req) - 1}}
	}

	cur, dst := req.Current[d], req.Dest[d]
	port := dirPort(req.K, d, cur, dst)

	positive := port == 2*d
	wraps := (positive && dst < cur) || (!positive && dst > cur)

	lo, hi := vcHalves(req)
	if wraps {
		return []Output{{Port: port, VCStart: hi[0], VCEnd: hi[1]}}
	}

	return []Output{{Port: port, VCStart: lo[0], VCEnd: lo[1]}}
}

// minAdaptTorus offers every productive port on the adaptive VCs and keeps VC 0
// as a dimension-order escape channel.
func minAdaptTorus(req Request) []Output {
	escape, ok := dimOrderPort(req.K, req.Current, req.Dest)
	if !ok {
		return []Output{{Port: ejectPort(req), VCEnd: numVCs(req) - 1}}
	}

	var outputs []Output

	if vcs := numVCs(req); vcs > 1 {
		for _, port := range productivePorts(req.K, req.Current, req.Dest) {
			outputs = append(outputs,
				Output{Port: port, VCStart: 1, VCEnd: vcs - 1})
		}
	}

	return append(outputs, Output{Port: escape, VCStart: 0, VCEnd: 0})
}

func valiantTorus(req Request) []Output {
	return valiant(req, false)
}

func valiantNITorus(req Request) []Output {
	return valiant(req, true)
}

// valiant routes dimension-order to the intermediate node on the lower VC half,
// then dimension-order to the destination on the upper half.
func valiant(req Request, nonInterfering bool) []Output {
	lo, hi := vcHalves(req)

	target, vcRange := req.Dest, hi
	if req.Intermediate != nil &&
		!req.ReachedIntermediate &&
		!slices.Equal(req.Current, req.Intermediate) {
		target, vcRange = req.Intermediate, lo
	}

	port, ok := dimOrderPort(req.K, req.Current, target)
	if !ok {
		return []Output{{Port: ejectPort(req), VCEnd: numVCs(req) - 1}}
	}

	out := Output{Port: port, VCStart: vcRange[0], VCEnd: vcRange[1]}

	if nonInterfering {
		width := vcRange[1] - vcRange[0] + 1
		vc := vcRange[0] + nodeID(req.K, req.Dest)%width
		out.VCStart, out.VCEnd = vc, vc
	}

	return []Output{out}
}

func chaosTorus(req Request) []Output {
	ports := productivePorts(req.K, req.Current, req.Dest)
	if len(ports) == 0 {
		return []Output{{Port: ejectPort(req), VCEnd: numVCs(req) - 1}}
	}

	outputs := make([]Output, 0, len(ports))
	for _, port := range ports {
		outputs = append(outputs,
			Output{Port: port, VCStart: 0, VCEnd: numVCs(req) - 1})
	}

	return outputs
}

func numVCs(req Request) int {
	if req.NumVCs < 1 {
		return 1
	}

	return req.NumVCs
}

func ejectPort(req Request) int {
	return 2 * len(req.Current)
}

// vcHalves splits the VCs into inclusive lower and upper ranges. With a single
// VC both halves are that VC.
func vcHalves(req Request) (lo, hi [2]int) {
	vcs := numVCs(req)
	if vcs < 2 {
		return [2]int{0, 0}, [2]int{0, 0}
	}

	half := vcs / 2

	return [2]int{0, half - 1}, [2]int{half, vcs - 1}
}

func firstDiffDim(cur, dst []int) (int, bool) {
	for d := range cur {
		if cur[d] != dst[d] {
			return d, true
		}
	}

	return 0, false
}

func dimOrderPort(k int, cur, dst []int) (int, bool) {
	d, ok := firstDiffDim(cur, dst)
	if !ok {
		return 0, false
	}

	return dirPort(k, d, cur[d], dst[d]), true
}

// dirPort picks the shorter way around the ring of dimension d; ties go
// positive.
func dirPort(k, d, from, to int) int {
	dist := ((to-from)%k + k) % k
	if dist <= k/2 {
		return 2 * d
	}

	return 2*d + 1
}

func productivePorts(k int, cur, dst []int) []int {
	var ports []int

	for d := range cur {
		if cur[d] != dst[d] {
			ports = append(ports, dirPort(k, d, cur[d], dst[d]))
		}
	}

	return ports
}

func nodeID(k int, coord []int) int {
	id, mult := 0, 1
	for _, c := range coord {
		id += c * mult
		mult *= k
	}

	return id
}
