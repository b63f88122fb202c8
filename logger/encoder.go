package logger

import (
	"bytes"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// asctimeLayout renders record timestamps as "2025-08-17 14:30:55,123".
const asctimeLayout = "2006-01-02 15:04:05,000"

var (
	_ zapcore.Encoder = (*lineEncoder)(nil)

	linePool    = buffer.NewPool()
	emptyObject = []byte("{}")
)

// lineEncoder writes one record per line in the form
//
//	[<asctime>]- <LEVEL> <name>: (line:<lineno>) - <message>
//
// The embedded JSON encoder only holds context fields; every entry key is
// left empty so it renders nothing but the field object.
type lineEncoder struct {
	zapcore.Encoder
}

func newLineEncoder() *lineEncoder {
	return &lineEncoder{Encoder: zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		SkipLineEnding: true,
		EncodeTime:     zapcore.TimeEncoderOfLayout(asctimeLayout),
		EncodeDuration: zapcore.StringDurationEncoder,
	})}
}

func (e *lineEncoder) Clone() zapcore.Encoder {
	return &lineEncoder{Encoder: e.Encoder.Clone()}
}

func (e *lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	extra, err := e.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return nil, err
	}
	defer extra.Free()

	line := linePool.Get()
	line.AppendByte('[')
	line.AppendTime(ent.Time, asctimeLayout)
	line.AppendString("]- ")
	line.AppendString(levelName(ent.Level))
	line.AppendByte(' ')
	line.AppendString(ent.LoggerName)
	line.AppendString(": (line:")
	line.AppendInt(int64(ent.Caller.Line))
	line.AppendString(") - ")
	line.AppendString(ent.Message)
	if b := extra.Bytes(); !bytes.Equal(b, emptyObject) {
		line.AppendByte(' ')
		_, _ = line.Write(b)
	}
	line.AppendString(zapcore.DefaultLineEnding)
	return line, nil
}

func levelName(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.InfoLevel:
		return "INFO"
	case zapcore.WarnLevel:
		return "WARNING"
	case zapcore.ErrorLevel:
		return "ERROR"
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return "CRITICAL"
	default:
		return l.CapitalString()
	}
}
