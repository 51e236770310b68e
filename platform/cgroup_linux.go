//go:build linux

package platform

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const cgroupRoot = "/sys/fs/cgroup"

type linuxCGroup struct{}

// NewCGroup constructs the production CGroup for this platform.
func NewCGroup() CGroup { return linuxCGroup{} }

func (linuxCGroup) MoveSelf(slice string) error {
	path := filepath.Join(cgroupRoot, slice)
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	procs := filepath.Join(path, "cgroup.procs")
	if err := os.WriteFile(procs, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		return fmt.Errorf("write %s: %w", procs, err)
	}
	return nil
}

// EnableControllers enables controllers at every level from the
// cgroup root down to slice, since cgroup v2 only lets a child use a
// controller its parent has already delegated via subtree_control.
func (linuxCGroup) EnableControllers(slice string, controllers []string) error {
	if len(controllers) == 0 {
		return nil
	}
	var enable strings.Builder
	for _, c := range controllers {
		enable.WriteString("+")
		enable.WriteString(c)
		enable.WriteString(" ")
	}

	parts := strings.Split(strings.Trim(slice, "/"), "/")
	current := cgroupRoot
	for i := 0; i <= len(parts); i++ {
		controlFile := filepath.Join(current, "cgroup.subtree_control")
		_ = os.WriteFile(controlFile, []byte(strings.TrimSpace(enable.String())), 0644)
		if i < len(parts) {
			current = filepath.Join(current, parts[i])
		}
	}
	return nil
}

func (linuxCGroup) CurrentPath() (string, error) {
	f, err := os.Open("/proc/self/cgroup")
	if err != nil {
		return "", fmt.Errorf("open /proc/self/cgroup: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// Format is "0::/path" for cgroup v2, "N:controller:/path" for v1.
		line := scanner.Text()
		idx := strings.LastIndex(line, ":")
		if idx < 0 {
			continue
		}
		return line[idx+1:], nil
	}
	return "", fmt.Errorf("no cgroup entry found for self")
}
