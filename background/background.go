// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run processes in the background
//
// a background process is a type implementing Run; all processes of a
// set are started together and stopped together
package background

import (
	"sync"
)

// Process - any type implementing Run can be started as a background
// process; Run must return promptly after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the set of started processes
type T struct {
	sync.WaitGroup
	finish chan struct{}
}

// Start - run a set of background processes
// all are passed the same args value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finish: make(chan struct{}),
	}
	register.Add(len(processes))

	// start each background
	for _, p := range processes {
		go func(p Process) {
			p.Run(args, register.finish)
			register.Done()
		}(p)
	}
	return register
}

// Stop - shut down the set and wait until every Run has returned
// safe to call on a nil handle
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.finish)

	// wait for all finished
	t.Wait()
}
