//go:build !unix

package main

import "syscall"

func reuseAddr(network, address string, c syscall.RawConn) error {
	return nil
}
