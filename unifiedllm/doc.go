// Package unifiedllm provides a small provider-agnostic LLM client used by
// the codeact agent. It wraps gollm behind a single blocking contract:
// Complete(messages, stop sequences, temperature) -> response text.
//
// A Client routes requests to registered ProviderAdapters by provider name
// (or by model catalog lookup) and applies middleware such as WithRetry.
// Providers must honor stop sequences by halting generation at the first
// occurrence; the caller is responsible for repairing replies clipped at a
// stop boundary.
//
//	client := unifiedllm.NewClientFromEnv()
//	resp, err := client.Complete(ctx, unifiedllm.Request{
//	    Model:    "claude-sonnet-4-5",
//	    Messages: []unifiedllm.Message{unifiedllm.UserMessage("hi")},
//	})
package unifiedllm
