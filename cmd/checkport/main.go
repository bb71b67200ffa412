// checkport reports whether a TCP port is free and can optionally kill
// the process holding it.
//
//	checkport [port] [--kill]
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

func main() {
	port := 3000
	kill := false
	for _, arg := range os.Args[1:] {
		if arg == "--kill" {
			kill = true
			continue
		}
		if p, err := strconv.Atoi(arg); err == nil {
			port = p
		}
	}

	pid, err := ownerPID(port)
	if err != nil || pid == "" {
		fmt.Printf("port %d is available\n", port)
		return
	}

	fmt.Printf("port %d is in use by process %s\n", port, pid)
	if !kill {
		fmt.Printf("to kill this process, run: checkport %d --kill\n", port)
		fmt.Printf("or manually: kill -9 %s\n", pid)
		os.Exit(1)
	}

	if err := exec.Command("kill", "-9", pid).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to kill process %s: %v\n", pid, err)
		os.Exit(1)
	}
	fmt.Printf("process %s killed, port %d is now available\n", pid, port)
}

// ownerPID shells out to lsof, which works on macOS and Linux.
func ownerPID(port int) (string, error) {
	out, err := exec.Command("lsof", "-ti", fmt.Sprintf(":%d", port)).Output()
	if err != nil {
		return "", err
	}
	pids := strings.Fields(strings.TrimSpace(string(out)))
	if len(pids) == 0 {
		return "", nil
	}
	return pids[0], nil
}
