package constant

// Bridge protocol identifiers shared by the stdio and websocket transports.
const (
	OpInit   = "init"
	OpLoad   = "load"
	OpRedraw = "redraw"
)

// ProtocolHelp documents the line protocol spoken by the stdio bridge.
const ProtocolHelp = `Commands are JSON objects, one per line:

  {"op": "init"}                        re-send the current palette, if any
  {"op": "load"}                        rescan the document and send the palette
  {"op": "redraw", "map": {"ff0000": "0000ff"}}
                                        recolor swatches and repaint the document

Palettes are sent back as {"colors": ["ff0000", "00ff00", ...]}.`
