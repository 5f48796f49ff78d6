package logger

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"
)

type properties struct {
	LogLevel   string `cfg:"loglevel"`
	TimeFormat string `cfg:"timeformat"`
	LogPath    string `cfg:"logpath"`
	FileLog    bool   `cfg:"filelog"`
}

// LoadConfiguration reads "key value" lines, skipping blanks and lines
// starting with '#'. Keys are case-insensitive; absent keys keep the values
// of DefaultConfiguration.
func LoadConfiguration(src io.Reader) (*Configuration, error) {
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 {
			key := line[:pivot]
			value := strings.TrimSpace(line[pivot+1:])
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read logger configuration: %w", err)
	}

	props := &properties{}
	t := reflect.TypeOf(props).Elem()
	v := reflect.ValueOf(props).Elem()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || key == "" {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			v.Field(i).SetString(value)
		case reflect.Bool:
			v.Field(i).SetBool(value == "yes")
		}
	}

	config := DefaultConfiguration()
	if props.LogLevel != "" {
		level, err := logrus.ParseLevel(props.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("loglevel: %w", err)
		}
		config.Level = level
	}
	if props.TimeFormat != "" {
		config.TimeFormat = props.TimeFormat
	}
	if props.LogPath != "" {
		config.LogPath = props.LogPath
	}
	config.EnableFileLog = props.FileLog
	return config, nil
}
