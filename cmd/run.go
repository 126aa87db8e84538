package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/yousfiSaad/netui/cmderr"
	"github.com/yousfiSaad/netui/host"
	"github.com/yousfiSaad/netui/hostlist"
	"github.com/yousfiSaad/netui/iface"
	"github.com/yousfiSaad/netui/linklayer"
	"github.com/yousfiSaad/netui/printer"
	"github.com/yousfiSaad/netui/scanner"
	"github.com/yousfiSaad/netui/stats"
)

// run resolves fragment to an interface, opens its datalink channel and
// drives the engine until interrupted, printing a live summary line to
// stdout on every tick.
func run(fragment string, windowSize int) error {
	desc, err := iface.Select(fragment)
	if err != nil {
		return cmderr.NetuiErr{Err: errors.Wrapf(err, "resolving interface %q", fragment)}
	}

	ch, err := linklayer.Open(desc.Name)
	if err != nil {
		return cmderr.NetuiErr{Err: errors.Wrapf(err, "opening %s", desc.Name)}
	}
	defer ch.Close()

	eng, err := scanner.New(desc, ch)
	if err != nil {
		return cmderr.NetuiErr{Err: err}
	}

	list := hostlist.New()
	agg := stats.NewAggregator(windowSize)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	eng.StartScanning()

	for {
		select {
		case <-sig:
			printer.Infoln("shutting down")
			return nil
		case ev, ok := <-eng.Events():
			if !ok {
				return nil
			}
			handleEvent(ev, list, agg)
		}
	}
}

func handleEvent(ev scanner.Event, list *hostlist.List, agg *stats.Aggregator) {
	switch ev.Kind {
	case scanner.EventInterfaceName:
		printer.Infof("scanning on %s\n", ev.InterfaceName)
	case scanner.EventBeginScan:
		printer.Infof("scan %s started\n", ev.ScanID)
	case scanner.EventComplete:
		printer.Infof("scan %s complete\n", ev.ScanID)
	case scanner.EventHostFound:
		list.Observe(ev.Host)
		printer.RawOutput(formatHost(ev.Host))
	case scanner.EventStatTick:
		agg.Tick(ev.Tick)
		list.ApplySpeeds(agg.SpeedPerHost())
		printSummary(agg)
	}
}

func formatHost(h host.Host) string {
	name := h.IPv4.String()
	if h.Hostname != nil {
		name += " (" + *h.Hostname + ")"
	}
	return "host found: " + name + " " + h.MAC.String()
}

func printSummary(agg *stats.Aggregator) {
	if s := agg.SpeedStr(); s != "" {
		printer.RawOutput("total: " + s)
	}
	for _, line := range agg.ConnectionsStrs() {
		printer.RawOutput(line)
	}
}
