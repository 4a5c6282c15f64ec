package symbols

import "strconv"

// sysctl(2) top-level CTL_* classes (macOS <sys/sysctl.h>).
var CtlClass = ConstMap{
	1: "CTL_KERN",
	2: "CTL_VM",
	3: "CTL_VFS",
	4: "CTL_NET",
	5: "CTL_DEBUG",
	6: "CTL_HW",
	7: "CTL_MACHDEP",
	8: "CTL_USER",
}

// KERN_* second-level names under CTL_KERN.
var KernName = ConstMap{
	1:  "KERN_OSTYPE",
	2:  "KERN_OSRELEASE",
	3:  "KERN_OSREV",
	4:  "KERN_VERSION",
	14: "KERN_PROC",
	24: "KERN_BOOTTIME",
	37: "KERN_HOSTNAME",
}

// HW_* second-level names under CTL_HW.
var HwName = ConstMap{
	1: "HW_MACHINE",
	2: "HW_MODEL",
	3: "HW_NCPU",
	5: "HW_MEMSIZE",
	7: "HW_PAGESIZE",
}

// SysctlBufferKind names how SysctlBuffer/SysctlBynameBuffer decoders
// interpret the buffer once the MIB (or name) identifies the node.
type SysctlBufferKind int

const (
	SysctlString SysctlBufferKind = iota
	SysctlInt32
	SysctlInt64
	SysctlOpaque
)

// SysctlMIBType maps a (CTL_class, second-level-id) pair to how its value
// buffer should be decoded, per spec §4.4's SysctlBuffer decoder.
var SysctlMIBType = map[[2]int32]SysctlBufferKind{
	{1, 1}:  SysctlString, // KERN_OSTYPE
	{1, 2}:  SysctlString, // KERN_OSRELEASE
	{1, 3}:  SysctlInt32,  // KERN_OSREV
	{1, 4}:  SysctlString, // KERN_VERSION
	{1, 37}: SysctlString, // KERN_HOSTNAME
	{6, 1}:  SysctlString, // HW_MACHINE
	{6, 2}:  SysctlString, // HW_MODEL
	{6, 3}:  SysctlInt32,  // HW_NCPU
	{6, 5}:  SysctlInt64,  // HW_MEMSIZE
	{6, 7}:  SysctlInt32,  // HW_PAGESIZE
}

// SysctlNameType maps a dotted sysctlbyname(3) name to its buffer kind.
var SysctlNameType = map[string]SysctlBufferKind{
	"kern.ostype":      SysctlString,
	"kern.osrelease":   SysctlString,
	"kern.osversion":   SysctlString,
	"kern.version":     SysctlString,
	"kern.hostname":    SysctlString,
	"hw.machine":       SysctlString,
	"hw.model":         SysctlString,
	"hw.ncpu":          SysctlInt32,
	"hw.memsize":       SysctlInt64,
	"hw.pagesize":      SysctlInt32,
	"hw.physicalcpu":   SysctlInt32,
	"hw.logicalcpu":    SysctlInt32,
}

// MIBName renders a decoded MIB array symbolically, e.g. "[CTL_KERN,
// KERN_OSTYPE]", falling back to the raw integer for unrecognized levels.
func MIBName(mib []int32) string {
	out := "["
	for i, v := range mib {
		if i > 0 {
			out += ", "
		}
		switch i {
		case 0:
			if name, ok := CtlClass.Lookup(int64(v)); ok {
				out += name
				continue
			}
		case 1:
			if len(mib) > 0 {
				switch mib[0] {
				case 1:
					if name, ok := KernName.Lookup(int64(v)); ok {
						out += name
						continue
					}
				case 6:
					if name, ok := HwName.Lookup(int64(v)); ok {
						out += name
						continue
					}
				}
			}
		}
		out += itoaInt32(v)
	}
	return out + "]"
}

func itoaInt32(v int32) string {
	return strconv.Itoa(int(v))
}
