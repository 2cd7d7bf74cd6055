// Package monitoring serves the networks built in a process over HTTP so that
// external tools can inspect routers, channels and process resources.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/sarchlab/toruscredit/noc/networking/torus"
	"github.com/sarchlab/toruscredit/sim"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// Monitor turns the process into a server that describes the networks
// registered with it. A Monitor is also a hook: passed to a torus builder, it
// tracks the wiring progress and registers the network once it is built.
type Monitor struct {
	portNumber int
	openURL    func(url string) error

	networksLock sync.RWMutex
	networks     []*torus.Network

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
	buildingBars     map[*torus.Network]*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		openURL:      browser.OpenURL,
		buildingBars: make(map[*torus.Network]*ProgressBar),
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterNetwork adds a network to be monitored.
func (m *Monitor) RegisterNetwork(n *torus.Network) {
	m.networksLock.Lock()
	defer m.networksLock.Unlock()

	for _, existing := range m.networks {
		if existing.Name() == n.Name() {
			panic(fmt.Sprintf("network %s is already monitored", n.Name()))
		}
	}

	m.networks = append(m.networks, n)
}

// Func follows the construction of a network.
func (m *Monitor) Func(ctx sim.HookCtx) {
	n, ok := ctx.Domain.(*torus.Network)
	if !ok {
		return
	}

	switch ctx.Pos {
	case torus.HookPosChannelConnected:
		m.barForNetwork(n).IncrementFinished(1)
	case torus.HookPosNetworkBuilt:
		m.progressBarsLock.Lock()
		bar := m.buildingBars[n]
		delete(m.buildingBars, n)
		m.progressBarsLock.Unlock()

		if bar != nil {
			m.CompleteProgressBar(bar)
		}

		m.RegisterNetwork(n)
	}
}

func (m *Monitor) barForNetwork(n *torus.Network) *ProgressBar {
	m.progressBarsLock.Lock()
	bar, found := m.buildingBars[n]
	m.progressBarsLock.Unlock()

	if found {
		return bar
	}

	bar = m.CreateProgressBar("Wiring "+n.Name(), uint64(n.NumChannels()))

	m.progressBarsLock.Lock()
	m.buildingBars[n] = bar
	m.progressBarsLock.Unlock()

	return bar
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := newProgressBar(name, total)

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// Handler returns the HTTP routes of the monitor.
func (m *Monitor) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/networks", m.listNetworks)
	r.HandleFunc("/api/network/{name}", m.networkDetails)
	r.HandleFunc("/api/router/{name}/{node:[0-9]+}", m.routerDetails)
	r.HandleFunc("/api/channel/{name}/{id:[0-9]+}", m.channelDetails)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)

	return r
}

// StartServer starts the monitor as a web server and returns its URL. If
// openBrowser is set, the URL is also opened in the default browser.
func (m *Monitor) StartServer(openBrowser bool) string {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr, "Monitoring networks with %s\n", url)

	handler := m.Handler()

	go func() {
		err := http.Serve(listener, handler)
		dieOnErr(err)
	}()

	if openBrowser {
		if err := m.openURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open browser: %s\n", err)
		}
	}

	return url
}

func (m *Monitor) listNetworks(w http.ResponseWriter, _ *http.Request) {
	m.networksLock.RLock()
	names := make([]string, 0, len(m.networks))
	for _, n := range m.networks {
		names = append(names, n.Name())
	}
	m.networksLock.RUnlock()

	writeJSON(w, names)
}

type networkRsp struct {
	Name              string  `json:"name"`
	K                 int     `json:"k"`
	N                 int     `json:"n"`
	Nodes             int     `json:"nodes"`
	Channels          int     `json:"channels"`
	Capacity          float64 `json:"capacity"`
	StronglyConnected bool    `json:"strongly_connected"`
	Diameter          int     `json:"diameter"`
}

func (m *Monitor) networkDetails(w http.ResponseWriter, r *http.Request) {
	n := m.findNetworkOr404(w, mux.Vars(r)["name"])
	if n == nil {
		return
	}

	analysis := n.Analyze()

	writeJSON(w, networkRsp{
		Name:              n.Name(),
		K:                 n.K(),
		N:                 n.N(),
		Nodes:             n.NumNodes(),
		Channels:          n.NumChannels(),
		Capacity:          n.Capacity(),
		StronglyConnected: analysis.StronglyConnected,
		Diameter:          analysis.Diameter,
	})
}

func (m *Monitor) routerDetails(w http.ResponseWriter, r *http.Request) {
	n := m.findNetworkOr404(w, mux.Vars(r)["name"])
	if n == nil {
		return
	}

	node, _ := strconv.Atoi(mux.Vars(r)["node"])
	if node >= n.NumNodes() {
		http.Error(w, "Router not found", http.StatusNotFound)
		return
	}

	serialize(w, n.Router(node))
}

func (m *Monitor) channelDetails(w http.ResponseWriter, r *http.Request) {
	n := m.findNetworkOr404(w, mux.Vars(r)["name"])
	if n == nil {
		return
	}

	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if id >= n.NumChannels() {
		http.Error(w, "Channel not found", http.StatusNotFound)
		return
	}

	serialize(w, n.Channel(id))
}

func (m *Monitor) findNetworkOr404(
	w http.ResponseWriter,
	name string,
) *torus.Network {
	m.networksLock.RLock()
	defer m.networksLock.RUnlock()

	for _, n := range m.networks {
		if n.Name() == name {
			return n
		}
	}

	http.Error(w, "Network not found", http.StatusNotFound)

	return nil
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	bars := make([]progressBarRsp, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		bars = append(bars, b.snapshot())
	}
	m.progressBarsLock.Unlock()

	writeJSON(w, bars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func serialize(w http.ResponseWriter, root any) {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(root)
	serializer.SetMaxDepth(1)

	w.Header().Set("Content-Type", "application/json")

	err := serializer.Serialize(w)
	dieOnErr(err)
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
