package photoshop

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"photoflow/internal/jobspec"
)

//go:embed scripts/batch_edit.jsx scripts/hdr_merge.jsx
var scriptAssets embed.FS

func scriptForKind(kind jobspec.Kind) (string, []byte, error) {
	var name string
	switch kind {
	case jobspec.KindBatchEdit:
		name = "batch_edit.jsx"
	case jobspec.KindHDRMerge:
		name = "hdr_merge.jsx"
	default:
		return "", nil, fmt.Errorf("no script for job kind %q", kind)
	}
	body, err := scriptAssets.ReadFile("scripts/" + name)
	if err != nil {
		return "", nil, fmt.Errorf("read embedded script %s: %w", name, err)
	}
	return name, body, nil
}

// materializedScript is a job's script plus parameter file written to disk for
// the editor to consume. Neither file outlives the job invocation.
type materializedScript struct {
	scriptPath string
	paramsPath string
}

func (m *materializedScript) cleanup() {
	if m.paramsPath != "" {
		_ = os.Remove(m.paramsPath)
	}
	if m.scriptPath != "" {
		_ = os.Remove(m.scriptPath)
	}
}

// materialize serializes the job's parameters to a temp JSON file and writes
// the job's script with a loader preamble that reads that file. This is the
// parameter-passing convention the editor's scripting runtime expects.
func materialize(job jobspec.Job) (*materializedScript, error) {
	name, body, err := scriptForKind(job.Kind())
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(job.Params())
	if err != nil {
		return nil, fmt.Errorf("encode job parameters: %w", err)
	}

	paramsFile, err := os.CreateTemp("", "photoflow-params-*.json")
	if err != nil {
		return nil, fmt.Errorf("create params file: %w", err)
	}
	materialized := &materializedScript{paramsPath: paramsFile.Name()}
	if _, err := paramsFile.Write(payload); err != nil {
		paramsFile.Close()
		materialized.cleanup()
		return nil, fmt.Errorf("write params file: %w", err)
	}
	if err := paramsFile.Close(); err != nil {
		materialized.cleanup()
		return nil, fmt.Errorf("close params file: %w", err)
	}

	scriptFile, err := os.CreateTemp("", "photoflow-"+name)
	if err != nil {
		materialized.cleanup()
		return nil, fmt.Errorf("create script file: %w", err)
	}
	materialized.scriptPath = scriptFile.Name()

	var script strings.Builder
	script.WriteString(loaderPreamble(materialized.paramsPath))
	script.Write(body)
	if _, err := scriptFile.WriteString(script.String()); err != nil {
		scriptFile.Close()
		materialized.cleanup()
		return nil, fmt.Errorf("write script file: %w", err)
	}
	if err := scriptFile.Close(); err != nil {
		materialized.cleanup()
		return nil, fmt.Errorf("close script file: %w", err)
	}

	return materialized, nil
}

func loaderPreamble(paramsPath string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(paramsPath)
	var b strings.Builder
	b.WriteString("// Load job parameters written by photoflow.\n")
	b.WriteString(`var paramsFile = new File("` + escaped + `");` + "\n")
	b.WriteString("paramsFile.open('r');\n")
	b.WriteString("var params = JSON.parse(paramsFile.read());\n")
	b.WriteString("paramsFile.close();\n\n")
	return b.String()
}
