//go:build tools
// +build tools

package tools

// This file declares tool dependencies that are used by the project.
// These imports ensure the dependencies are tracked in go.mod.

import (
	_ "google.golang.org/grpc"
	_ "google.golang.org/protobuf/proto"
)
