package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/scuttlehq/scuttle/internal/engine"
)

// auditEntry records one destroy run: who was targeted, whether the
// operator went through with it, and how every resource ended up.
type auditEntry struct {
	Time    string        `json:"time"`
	Project string        `json:"project"`
	Region  string        `json:"region,omitempty"`
	Account string        `json:"account,omitempty"`
	Aborted bool          `json:"aborted,omitempty"`
	Results []auditResult `json:"results,omitempty"`
	Failed  int           `json:"failed,omitempty"`
}

// auditResult is one resource's final disposition.
type auditResult struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
}

// auditLogPath returns the path to the audit log file.
func auditLogPath() string {
	return filepath.Join(".scuttle", "audit.log")
}

// auditResults flattens an execution summary into audit form.
func auditResults(summary *engine.Summary) []auditResult {
	results := make([]auditResult, 0, len(summary.Results))
	for _, r := range summary.Results {
		results = append(results, auditResult{
			Kind:    string(r.Resource.Kind),
			ID:      r.Resource.ID,
			Outcome: string(r.Outcome),
		})
	}
	return results
}

// writeAuditLog appends an audit entry to the audit log file. A destroy
// run is recorded whether it completed, found nothing, or was aborted.
func writeAuditLog(entry auditEntry) error {
	return appendAuditEntry(auditLogPath(), entry)
}

func appendAuditEntry(path string, entry auditEntry) error {
	if entry.Time == "" {
		entry.Time = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create audit directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	_, err = f.Write(append(data, '\n'))
	return err
}
