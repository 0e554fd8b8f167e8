// Package main provides the CLI entrypoint for bundle-generator.
//
// bundle-generator is a compile-time codegen tool that:
//   - Loads Go packages (AST + go/types) and collects bundle-tagged fields
//   - Classifies every field as primitive, text, serializable or parcelable
//   - Writes one Inject<Type>Bundle function per owning type
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Execute(ctx)

	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
