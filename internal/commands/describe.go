package commands

import (
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/ar-go/nucleus/internal/buffer"
	"github.com/ar-go/nucleus/internal/command"
)

// bindingsBufferName is the dedicated read-only buffer
// describe-bindings renders into, recreated on every invocation.
const bindingsBufferName = "*Bindings*"

// describeBindings dumps the resolved keymap as a pretty-printed JSON
// document into a dedicated read-only buffer and switches the current
// window to it.
func describeBindings(state command.State, _ *command.Context) error {
	doc := []byte(`{"bindings":[]}`)
	var err error
	for _, b := range state.Keymap().Bindings() {
		doc, err = sjson.SetBytes(doc, "bindings.-1", map[string]any{
			"keys":    b.Keys,
			"command": b.Command,
		})
		if err != nil {
			return err
		}
	}
	doc = pretty.Pretty(doc)

	buffers := state.Buffers()
	if id, ok := buffers.FindByName(bindingsBufferName); ok {
		buffers.Kill(id)
	}
	id := buffers.NewBufferFromString(bindingsBufferName, string(doc), buffer.WithReadOnly(true))
	buffers.SetCurrent(id)
	state.Windows().SetCurrentBuffer(id)
	return nil
}

func registerDescribe(r *command.Registry) {
	r.Register(command.New("describe-bindings", describeBindings))
}
