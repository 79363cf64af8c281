package kinesis

import (
	"slices"
)

// Fault is a documented service fault identifier together with its
// documented transport status code. Faults are reference data for an
// external fault-dispatch layer; they are not control flow in this
// package.
//
// It should only be constructed with F.
type Fault struct {
	name   string
	status int
}

// F builds a Fault from a documented code string and status code.
func F(name string, status int) Fault {
	return Fault{name: name, status: status}
}

func (f Fault) Name() string {
	return f.name
}

func (f Fault) Status() int {
	return f.status
}

// IsUnknown reports whether this is the sentinel for an unrecognized
// service fault.
func (f Fault) IsUnknown() bool {
	return f == UnknownFault
}

// UnknownFault is the sentinel every catalog resolves unrecognized code
// strings to. Lookups never fail or panic on codes absent from a catalog.
var UnknownFault = Fault{name: "UnknownServiceFault", status: 0}

/***** FaultCatalog *****/

// FaultCatalog is the closed, enumerable set of documented fault codes for
// one operation.
//
// It should only be constructed with BuildFaultCatalog.
type FaultCatalog struct {
	faults []Fault
}

// BuildFaultCatalog is a factory method for FaultCatalog.
//
// It sanitizes the input:
//   - removing unnamed faults
//   - sorting the faults by name
//   - removing duplicate names
func BuildFaultCatalog(fault Fault, faults ...Fault) FaultCatalog {
	all := append([]Fault{fault}, faults...)

	all = slices.DeleteFunc(all, func(f Fault) bool { return f.name == "" })

	slices.SortFunc(all, func(a Fault, b Fault) int {
		switch {
		case a.name < b.name:
			return -1
		case a.name > b.name:
			return 1
		default:
			return 0
		}
	})

	all = slices.CompactFunc(all, func(a Fault, b Fault) bool { return a.name == b.name })

	return FaultCatalog{faults: all}
}

// Faults returns the catalog entries ordered by name.
func (c FaultCatalog) Faults() []Fault {
	return c.faults
}

// Lookup resolves a code string to its catalog entry.
func (c FaultCatalog) Lookup(code string) (Fault, bool) {
	for _, f := range c.faults {
		if f.name == code {
			return f, true
		}
	}

	return UnknownFault, false
}

// Classify resolves a code string to a catalog entry, mapping codes absent
// from the catalog to UnknownFault.
func (c FaultCatalog) Classify(code string) Fault {
	fault, _ := c.Lookup(code)

	return fault
}

// FaultCatalogFor returns the exception catalog of an Action. The mapping
// is closed and total over the Action enumeration; an unknown Action
// yields an empty catalog.
func FaultCatalogFor(action Action) FaultCatalog {
	switch action {
	case ActionCreateStream:
		return CreateStreamFaults
	case ActionDeleteStream:
		return DeleteStreamFaults
	case ActionDescribeStream:
		return DescribeStreamFaults
	case ActionListStreams:
		return ListStreamsFaults
	case ActionPutRecord:
		return PutRecordFaults
	case ActionGetShardIterator:
		return GetShardIteratorFaults
	case ActionGetRecords:
		return GetRecordsFaults
	case ActionMergeShards:
		return MergeShardsFaults
	case ActionSplitShard:
		return SplitShardFaults
	default:
		return FaultCatalog{}
	}
}
