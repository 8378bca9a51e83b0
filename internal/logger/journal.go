package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// DecisionJournal is the per-symbol audit file: every resolved decision
// is appended as a human-readable block, so a session can be replayed
// without parsing structured logs.
type DecisionJournal struct {
	symbol      string
	journalFile *os.File
	logger      *log.Logger
	mu          sync.Mutex
	journalDir  string
}

// JournalLevel labels the non-decision entries
type JournalLevel string

const (
	JournalLevelInfo    JournalLevel = "INFO"
	JournalLevelWarning JournalLevel = "WARN"
	JournalLevelError   JournalLevel = "ERROR"
)

// NewDecisionJournal creates a journal for the symbol under logs/.
func NewDecisionJournal(symbol string) (*DecisionJournal, error) {
	return NewDecisionJournalAt("logs", symbol)
}

// NewDecisionJournalAt creates a journal for the symbol under dir.
func NewDecisionJournalAt(dir, symbol string) (*DecisionJournal, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("%s_decisions_%s.log", symbol, timestamp)
	journalPath := filepath.Join(dir, filename)

	file, err := os.OpenFile(journalPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}

	j := &DecisionJournal{
		symbol:      symbol,
		journalFile: file,
		logger:      log.New(file, "", 0),
		journalDir:  dir,
	}

	j.writeSessionHeader()

	return j, nil
}

func (j *DecisionJournal) writeSessionHeader() {
	j.mu.Lock()
	defer j.mu.Unlock()

	header := fmt.Sprintf(`
================================================================================
🚦 SIGNAL SESSION STARTED
================================================================================
Symbol: %s
Started: %s
================================================================================
`, j.symbol, time.Now().Format("2006-01-02 15:04:05"))

	j.logger.Print(header)
}

// Log writes a formatted journal entry with the specified level
func (j *DecisionJournal) Log(level JournalLevel, format string, args ...interface{}) {
	j.mu.Lock()
	defer j.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	j.logger.Println(fmt.Sprintf("[%s] [%s] %s", timestamp, level, message))
}

// Info logs an info message
func (j *DecisionJournal) Info(format string, args ...interface{}) {
	j.Log(JournalLevelInfo, format, args...)
}

// Warning logs a warning message
func (j *DecisionJournal) Warning(format string, args ...interface{}) {
	j.Log(JournalLevelWarning, format, args...)
}

// Error logs an error message
func (j *DecisionJournal) Error(format string, args ...interface{}) {
	j.Log(JournalLevelError, format, args...)
}

// LogError logs an error with context
func (j *DecisionJournal) LogError(context string, err error) {
	j.Error("%s: %v", context, err)
}

// LogDecision appends one resolved decision as a readable block: the
// market line, the signal line, the agreement tally when confluence
// mode ran, and every analysis detail.
func (j *DecisionJournal) LogDecision(snap *types.IndicatorSnapshot, decision *types.SignalDecision) {
	j.mu.Lock()
	defer j.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")

	mode := "traditional"
	if decision.Confluence != nil {
		mode = "confluence"
	}

	block := fmt.Sprintf(`
[%s] [DECISION] ==================== %s ====================
💰 Price: $%s | Mode: %s`,
		timestamp, snap.Symbol, snap.LastPrice.StringFixed(snap.PricePrecision), mode)

	if decision.HasSignal {
		block += fmt.Sprintf("\n📊 Signal: %s (%s)", decision.Direction(), decision.SignalType)
	} else {
		block += "\n📊 Signal: NONE"
	}

	if decision.Confluence != nil {
		c := decision.Confluence
		block += fmt.Sprintf("\n🤝 Agreement: %d long / %d short (need %d)",
			c.LongCount, c.ShortCount, c.MinRequired)
	}

	for _, detail := range decision.AnalysisDetails {
		block += "\n   " + detail
	}

	block += "\n=============================================================="

	j.logger.Println(block)
}

// Close writes the session footer and closes the journal file
func (j *DecisionJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.journalFile != nil {
		footer := fmt.Sprintf(`
================================================================================
🛑 SIGNAL SESSION ENDED
================================================================================
Ended: %s
================================================================================

`, time.Now().Format("2006-01-02 15:04:05"))
		j.logger.Print(footer)

		return j.journalFile.Close()
	}
	return nil
}

// GetJournalPath returns the current journal file path
func (j *DecisionJournal) GetJournalPath() string {
	timestamp := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("%s_decisions_%s.log", j.symbol, timestamp)
	return filepath.Join(j.journalDir, filename)
}
