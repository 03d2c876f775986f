package driver

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default_topology.yaml
var defaultTopologyYAML []byte

// Topology describes the platforms and devices exposed by a simulated driver.
type Topology struct {
	Platforms []PlatformSpec `yaml:"platforms"`
}

// PlatformSpec describes one platform and its devices.
type PlatformSpec struct {
	Name       string       `yaml:"name"`
	Vendor     string       `yaml:"vendor"`
	Version    string       `yaml:"version"`
	Profile    string       `yaml:"profile"`
	Extensions []string     `yaml:"extensions"`
	Devices    []DeviceSpec `yaml:"devices"`
}

// DeviceSpec describes one device.
type DeviceSpec struct {
	Name              string   `yaml:"name"`
	Vendor            string   `yaml:"vendor"`
	VendorID          uint32   `yaml:"vendor_id"`
	Type              string   `yaml:"type"` // cpu, gpu, accelerator.
	Version           string   `yaml:"version"`
	DriverVersion     string   `yaml:"driver_version"`
	OpenCLCVersion    string   `yaml:"opencl_c_version"`
	ComputeUnits      uint32   `yaml:"compute_units"`
	MaxClockMHz       uint32   `yaml:"max_clock_mhz"`
	AddressBits       uint32   `yaml:"address_bits"`
	MaxWorkGroupSize  uint64   `yaml:"max_work_group_size"`
	MaxWorkItemSizes  []uint64 `yaml:"max_work_item_sizes"`
	GlobalMemSize     uint64   `yaml:"global_mem_size"` // 0 on a CPU device means the memory of the host.
	LocalMemSize      uint64   `yaml:"local_mem_size"`
	MaxMemAllocSize   uint64   `yaml:"max_mem_alloc_size"`
	Available         bool     `yaml:"available"`
	CompilerAvailable bool     `yaml:"compiler_available"`
	Extensions        []string `yaml:"extensions"`
}

// deviceTypes maps the names accepted in the topology to DeviceType bits.
var deviceTypes = map[string]DeviceType{
	"cpu":         DeviceTypeCPU,
	"gpu":         DeviceTypeGPU,
	"accelerator": DeviceTypeAccelerator,
}

// ParseTopology parses a YAML topology and validates it.
func ParseTopology(data []byte) (*Topology, error) {
	topology := &Topology{}
	if err := yaml.Unmarshal(data, topology); err != nil {
		return nil, errors.Wrap(err, "failed to parse driver topology")
	}
	if err := topology.validate(); err != nil {
		return nil, err
	}
	return topology, nil
}

// LoadTopology reads and parses a YAML topology file.
func LoadTopology(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read driver topology from %q", path)
	}
	topology, err := ParseTopology(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "topology file %q", path)
	}
	return topology, nil
}

// DefaultTopology returns the built-in topology: a CPU platform with one device, and an accelerator
// platform with one GPU and one unavailable accelerator.
func DefaultTopology() *Topology {
	topology, err := ParseTopology(defaultTopologyYAML)
	if err != nil {
		panic(errors.WithMessage(err, "built-in topology is invalid"))
	}
	return topology
}

func (t *Topology) validate() error {
	if len(t.Platforms) == 0 {
		return errors.New("driver topology has no platforms")
	}
	for pIdx, p := range t.Platforms {
		if p.Name == "" {
			return errors.Errorf("platform #%d has no name", pIdx)
		}
		for dIdx, d := range p.Devices {
			if d.Name == "" {
				return errors.Errorf("device #%d of platform %q has no name", dIdx, p.Name)
			}
			if _, found := deviceTypes[strings.ToLower(d.Type)]; !found {
				return errors.Errorf("device %q of platform %q has invalid type %q: valid types are cpu, gpu and accelerator",
					d.Name, p.Name, d.Type)
			}
		}
	}
	return nil
}

// deviceType returns the DeviceType bit of the device. The topology was validated.
func (d *DeviceSpec) deviceType() DeviceType {
	return deviceTypes[strings.ToLower(d.Type)]
}
