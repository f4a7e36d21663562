package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func init() {
	// 在 IDE 中直接运行时使用示例图纸
	if strings.HasPrefix(filepath.Base(os.Args[0]), "___go_build_") && len(os.Args) < 2 {
		os.Args = append(os.Args, "cmd/testdata/composite.txt")
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
