package service

import (
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type recordingTarget struct {
	tools []string
}

func (r *recordingTarget) AddTool(tool *mcp.Tool, handler any) error {
	r.tools = append(r.tools, tool.Name)
	return nil
}

func TestRegistrationModulesCoverEveryTool(t *testing.T) {
	target := &recordingTarget{}
	for _, module := range newRegistrationModules(nil, nil, nil) {
		if err := module.register(target); err != nil {
			t.Fatalf("register module %q: %v", module.name, err)
		}
	}

	want := []string{"fetch_street_view", "get_street_view_metadata", "create_gallery", "list_saved_images"}
	if len(target.tools) != len(want) {
		t.Fatalf("expected %d tools, got %v", len(want), target.tools)
	}
	for i, name := range want {
		if target.tools[i] != name {
			t.Errorf("tool %d: expected %q, got %q", i, name, target.tools[i])
		}
	}
}

func TestRegisterToolRejectsNilTool(t *testing.T) {
	if err := registerTool(&recordingTarget{}, nil, nil); err == nil {
		t.Fatal("expected error for nil tool")
	}
}

func TestAddToolRejectsUnsupportedHandler(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "v0.0.1"}, nil)
	err := addTool(server, &mcp.Tool{Name: "mystery"}, func() {})
	if err == nil {
		t.Fatal("expected error for unsupported handler type")
	}
	if !strings.Contains(err.Error(), "mystery") {
		t.Errorf("expected tool name in error, got: %v", err)
	}
}
