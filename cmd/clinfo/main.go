// clinfo lists the platforms and devices of the compute runtime, and the values of device attributes.
package main

import (
	"flag"
	"fmt"
	"github.com/gomlx/clwrap/compute"
	"github.com/gomlx/clwrap/driver"
	"github.com/gomlx/clwrap/wrapper"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"io"
	"k8s.io/klog/v2"
	"os"
	"slices"
	"strings"
)

var (
	flagAll      = flag.Bool("all", false, "Show all known device attributes")
	flagBasic    = flag.Bool("basic", false, "Show the basic device attributes (the default if neither -all nor -custom are given)")
	flagCustom   = flag.String("custom", "", "Comma-separated list of device attributes to show, e.g. \"name,max_work\". Names are matched by case-insensitive prefix, the CL_DEVICE_ prefix is optional")
	flagPlatform = flag.Int("platform", -1, "Only show the platform with this index")
	flagDevice   = flag.Int("device", -1, "Only show the device with this index (within each platform shown)")
	flagTopology = flag.String("topology", "", "YAML file describing the simulated runtime. If empty, $"+driver.TopologyEnv+" or the built-in topology is used")
	flagNoCache  = flag.Bool("nocache", false, "Query every attribute from the runtime, even if already cached")
)

// notAvailable is printed for attributes that can't be queried.
const notAvailable = "N/A"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `clinfo lists the platforms and devices of the compute runtime.

$ clinfo [-all | -basic | -custom=name,...] [-platform=N] [-device=N]

Usage:
`)
		flag.PrintDefaults()
	}
	klog.InitFlags(flag.CommandLine)
	flag.Parse()

	api := driver.Default()
	if *flagTopology != "" {
		api = driver.New(must.M1(driver.LoadTopology(*flagTopology)))
	}
	params, err := selectParams()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		flag.Usage()
		os.Exit(1)
	}
	err = run(os.Stdout, api, params)
	if !wrapper.AllReleased() {
		klog.Errorf("Leaked wrappers for native handles %v", wrapper.Default.Live())
		os.Exit(1)
	}
	must.M(err)
}

// selectParams returns the device attributes to show, according to the flags.
func selectParams() ([]compute.DeviceParam, error) {
	if *flagAll {
		return compute.DeviceParams, nil
	}
	var params []compute.DeviceParam
	if *flagCustom != "" {
		seen := make(map[string]bool)
		for _, name := range strings.Split(*flagCustom, ",") {
			found := compute.FindDeviceParams(name)
			if len(found) == 0 {
				return nil, errors.Errorf("unknown device attribute %q in -custom", name)
			}
			for _, p := range found {
				if !seen[p.Name] {
					seen[p.Name] = true
					params = append(params, p)
				}
			}
		}
	}
	if *flagBasic || *flagCustom == "" {
		for _, p := range compute.BasicDeviceParams() {
			if !slices.ContainsFunc(params, func(other compute.DeviceParam) bool { return other.Name == p.Name }) {
				params = append(params, p)
			}
		}
	}
	return params, nil
}

// run prints the selected platforms and devices, and destroys everything it created.
func run(w io.Writer, api *driver.API, params []compute.DeviceParam) error {
	platforms, err := compute.NewPlatforms(api)
	if err != nil {
		return err
	}
	defer func() {
		if err := platforms.Destroy(); err != nil {
			klog.Errorf("Failed to destroy platforms: %+v", err)
		}
	}()

	if *flagPlatform >= platforms.Count() {
		return errors.Errorf("-platform=%d given, but there are only %d platforms", *flagPlatform, platforms.Count())
	}
	for pIdx, platform := range platforms.All() {
		if *flagPlatform >= 0 && pIdx != *flagPlatform {
			continue
		}
		printPlatform(w, pIdx, platform)
		devices, err := platform.Devices()
		if err != nil {
			fmt.Fprintf(w, "  Devices: %s\n", notAvailable)
			klog.V(1).Infof("Failed to list devices of %s: %+v", platform, err)
			continue
		}
		for dIdx, device := range devices {
			if *flagDevice >= 0 && dIdx != *flagDevice {
				continue
			}
			printDevice(w, dIdx, device, params)
		}
	}
	return nil
}

func printPlatform(w io.Writer, idx int, platform *compute.Platform) {
	fmt.Fprintf(w, "Platform #%d: %s\n", idx, orNA(platform.Name()))
	fmt.Fprintf(w, "  %-25s %s\n", "VENDOR", orNA(platform.Vendor()))
	fmt.Fprintf(w, "  %-25s %s\n", "VERSION", orNA(platform.Version()))
	fmt.Fprintf(w, "  %-25s %s\n", "PROFILE", orNA(platform.Profile()))
	extensions, err := platform.Extensions()
	fmt.Fprintf(w, "  %-25s %s\n", "EXTENSIONS", orNA(strings.Join(extensions, " "), err))
}

func printDevice(w io.Writer, idx int, device *compute.Device, params []compute.DeviceParam) {
	fmt.Fprintf(w, "  Device #%d: %s\n", idx, orNA(device.Name()))
	for _, p := range params {
		var info *wrapper.Info
		var err error
		if *flagNoCache {
			info, err = device.RefreshInfo(p.Param)
		} else {
			info, err = device.Info(p.Param)
		}
		value := notAvailable
		if err == nil {
			value = orNA(p.Format(info))
		} else {
			klog.V(1).Infof("Failed to get %s of %s: %v", p.Name, device, err)
		}
		fmt.Fprintf(w, "    %-25s %s\n", p.Name, value)
	}
}

// orNA returns value, or notAvailable if err is not nil.
func orNA(value string, err error) string {
	if err != nil {
		return notAvailable
	}
	return value
}
