// Ollama Bridge exposes a local Ollama server through the OpenAI HTTP API.
//
// Clients written against /v1/chat/completions, /v1/completions and
// /v1/models talk to the bridge, which translates each request into the
// matching Ollama call and translates the reply back, including streamed
// replies as server-sent events.
//
// Usage:
//
//	# Start with defaults (listen on 0.0.0.0:8003, Ollama at localhost:11434)
//	ollama-bridge serve
//
//	# Start with a configuration file
//	ollama-bridge serve --config /etc/ollama-bridge/config.yaml
//
//	# Check that the Ollama server is reachable
//	ollama-bridge check --ollama-host http://gpu-box:11434
//
//	# List the models the backend serves
//	ollama-bridge models --output json
//
//	# Show version information
//	ollama-bridge version
package main

func main() {
	Execute()
}
