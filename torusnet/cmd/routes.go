package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/iti/rngstream"
	"github.com/sarchlab/toruscredit/noc/networking/routing"
	"github.com/sarchlab/toruscredit/noc/networking/torus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

type routeQuery struct {
	function string
	k, n     int
	src, dst int
	numVCs   int
	stream   string
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routing functions or evaluate one of them.",
	Long: "`routes` lists every registered routing function. " +
		"`routes --function dim_order_torus_torus_credit --src 0 --dst 5` " +
		"prints the outputs the function offers at the source router. " +
		"Ports use the bidirectional torus numbering the functions are " +
		"aliased from: 2d is positive in dimension d, 2d+1 negative, " +
		"and 2n ejects. They are not the port indices of a " +
		"unidirectional router.",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.SilenceUsage = true

		reg, err := newRoutingRegistry()
		if err != nil {
			atexit.Fatalf("Error registering routing functions: %v", err)
		}

		q := routeQuery{}
		q.function, _ = cmd.Flags().GetString("function")
		if q.function == "" {
			listRoutes(reg, os.Stdout)
			return
		}

		q.k, _ = cmd.Flags().GetInt("k")
		q.n, _ = cmd.Flags().GetInt("n")
		q.src, _ = cmd.Flags().GetInt("src")
		q.dst, _ = cmd.Flags().GetInt("dst")
		q.numVCs, _ = cmd.Flags().GetInt("vcs")
		q.stream, _ = cmd.Flags().GetString("stream")

		if err := evaluateRoute(reg, q, os.Stdout); err != nil {
			atexit.Fatalf("Error evaluating route: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)

	routesCmd.Flags().String("function", "", "Routing function to evaluate")
	routesCmd.Flags().Int("k", 4, "Radix, the number of nodes per dimension")
	routesCmd.Flags().Int("n", 2, "Number of dimensions")
	routesCmd.Flags().Int("src", 0, "Current router")
	routesCmd.Flags().Int("dst", 0, "Destination router")
	routesCmd.Flags().Int("vcs", 2, "Number of virtual channels per port")
	routesCmd.Flags().String("stream", "Valiant",
		"Name of the random stream that picks Valiant intermediates")
}

// newRoutingRegistry registers the bidirectional torus family and the
// unidirectional aliases built on top of it.
func newRoutingRegistry() (*routing.Registry, error) {
	reg := routing.NewRegistry()

	if err := routing.RegisterTorusFunctions(reg); err != nil {
		return nil, err
	}

	if err := torus.RegisterRoutingFunctions(reg); err != nil {
		return nil, err
	}

	return reg, nil
}

func listRoutes(reg *routing.Registry, out io.Writer) {
	aliases := torus.RoutingAliases()

	for _, name := range reg.Names() {
		if base, ok := aliases[name]; ok {
			fmt.Fprintf(out, "%s -> %s\n", name, base)
			continue
		}

		fmt.Fprintln(out, name)
	}
}

func evaluateRoute(reg *routing.Registry, q routeQuery, out io.Writer) error {
	f, err := reg.Lookup(q.function)
	if err != nil {
		return err
	}

	size, err := torus.ComputeSize(q.k, q.n)
	if err != nil {
		return err
	}

	if q.src < 0 || q.src >= size.Nodes || q.dst < 0 || q.dst >= size.Nodes {
		return fmt.Errorf("routers must be in [0, %d)", size.Nodes)
	}

	mapper := torus.NewMapper(size)
	req := routing.Request{
		K:       q.k,
		Current: mapper.ToCoordinate(q.src),
		Dest:    mapper.ToCoordinate(q.dst),
		NumVCs:  q.numVCs,
	}

	if usesIntermediate(q.function) && q.stream != "" {
		req.Intermediate = routing.PickIntermediate(
			rngstream.New(q.stream), q.k, q.n)
		fmt.Fprintf(out, "Intermediate: %v\n", req.Intermediate)
	}

	for _, o := range f(req) {
		fmt.Fprintf(out, "port %d vcs [%d, %d]\n", o.Port, o.VCStart, o.VCEnd)
	}

	return nil
}

func usesIntermediate(function string) bool {
	if base, ok := torus.RoutingAliases()[function]; ok {
		function = base
	}

	return function == routing.ValiantTorus || function == routing.ValiantNITorus
}
