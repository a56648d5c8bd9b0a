// Package netutil provides IPv4 CIDR arithmetic for topology planning:
// containment and overlap checks used by config validation, and host
// address calculation used to pin static private IPs inside subnets.
package netutil

import (
	"encoding/binary"
	"fmt"
	"net"
)

// Contains reports whether inner lies entirely within outer.
func Contains(outer, inner string) (bool, error) {
	_, outerNet, err := net.ParseCIDR(outer)
	if err != nil {
		return false, fmt.Errorf("invalid outer CIDR %q: %w", outer, err)
	}
	innerIP, innerNet, err := net.ParseCIDR(inner)
	if err != nil {
		return false, fmt.Errorf("invalid inner CIDR %q: %w", inner, err)
	}

	outerSize, _ := outerNet.Mask.Size()
	innerSize, _ := innerNet.Mask.Size()
	return outerNet.Contains(innerIP) && innerSize >= outerSize, nil
}

// Overlaps reports whether two CIDR ranges share any addresses.
func Overlaps(a, b string) (bool, error) {
	_, aNet, err := net.ParseCIDR(a)
	if err != nil {
		return false, fmt.Errorf("invalid CIDR %q: %w", a, err)
	}
	_, bNet, err := net.ParseCIDR(b)
	if err != nil {
		return false, fmt.Errorf("invalid CIDR %q: %w", b, err)
	}
	return aNet.Contains(bNet.IP) || bNet.Contains(aNet.IP), nil
}

// Host calculates the nth host address inside prefix, mirroring the
// usual cidrhost semantics. Only IPv4 prefixes are supported.
func Host(prefix string, hostnum int) (string, error) {
	_, network, err := net.ParseCIDR(prefix)
	if err != nil {
		return "", fmt.Errorf("invalid CIDR prefix: %w", err)
	}
	ip4 := network.IP.To4()
	if ip4 == nil {
		return "", fmt.Errorf("only IPv4 prefixes are supported: %s", prefix)
	}

	maskSize, totalBits := network.Mask.Size()
	hostBits := totalBits - maskSize
	maxHosts := uint64(1) << hostBits

	if hostnum < 0 || uint64(hostnum) >= maxHosts {
		return "", fmt.Errorf("host number %d out of range for %s", hostnum, prefix)
	}

	base := binary.BigEndian.Uint32(ip4)
	addr := base + uint32(hostnum)

	out := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(out, addr)
	return out.String(), nil
}
