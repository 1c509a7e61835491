//go:build windows

package platform

import (
	"os/exec"
	"syscall"
)

// createNoWindow is CREATE_NO_WINDOW
const createNoWindow = 0x08000000

// HideWindow configures a command to run without showing a console window on Windows
func HideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
}
