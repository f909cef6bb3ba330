package langdetect

import (
	"testing"
)

func BenchmarkDetectShellTranscript(b *testing.B) {
	code := []byte(`$ ncli cluster info
$ genesis status
$ allssh "cat /etc/hosts"`)
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}

func BenchmarkDetectPython(b *testing.B) {
	code := []byte(`def check_status():
    print("checking")

if __name__ == "__main__":
    check_status()`)
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}

func BenchmarkDetectYAML(b *testing.B) {
	code := []byte(`cluster: prod
nodes: 4
services:
  - genesis
  - zeus`)
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}

func BenchmarkDetectFallback(b *testing.B) {
	code := []byte("output of a command with no recognizable structure")
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}
