// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

type Logger interface {
	Log(msg string, fields map[string]interface{}) error
}

// SimpleLogger writes each message as a JSON object on its own line.
type SimpleLogger struct {
	writer io.Writer
	mutex  *sync.Mutex
}

func (l *SimpleLogger) Log(msg string, fields map[string]interface{}) error {
	m := map[string]interface{}{
		"ts":  time.Now().Format(time.RFC3339),
		"msg": msg,
	}
	for k, v := range fields {
		m[k] = v
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshaling log message: %w", err)
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, err = l.writer.Write(append(b, '\n'))
	if err != nil {
		return fmt.Errorf("error writing log message: %w", err)
	}
	return nil
}

func NewSimpleLogger(w io.Writer) *SimpleLogger {
	return &SimpleLogger{
		writer: w,
		mutex:  &sync.Mutex{},
	}
}
