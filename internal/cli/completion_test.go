package cli

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompletionCommand(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			root := testCLI().RootCommand()
			root.SetArgs([]string{"completion", shell})
			root.SetOut(&buf)
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(buf.String(), "buttonstrip") {
				t.Errorf("completion %s does not mention buttonstrip", shell)
			}
		})
	}
}

func TestStripFileCompletion(t *testing.T) {
	exts, dir := stripFileCompletion(nil, nil, "")
	if want := []string{"toml", "json"}; !reflect.DeepEqual(exts, want) {
		t.Errorf("extensions = %v, want %v", exts, want)
	}
	if dir != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("directive = %v, want FilterFileExt", dir)
	}
	if _, dir := stripFileCompletion(nil, []string{"strip.toml"}, ""); dir != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("second arg directive = %v, want NoFileComp", dir)
	}
}
