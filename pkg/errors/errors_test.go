package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "bamboo: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "PredictProba",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "bamboo: PredictProba: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("New", 10, 7, 0)

	// 基本的なエラーメッセージの確認
	want := "bamboo: New: dimension mismatch on axis 0 (rows). Expected 10, got 7"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// DimensionError型にキャスト可能か確認
	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("Classifier", "PredictProbaRow")

	// 基本的なエラーメッセージの確認
	want := "bamboo: Classifier: this model is not fitted yet. Call Fit() before using PredictProbaRow()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// NotFittedError型にキャスト可能か確認
	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewKeyError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		key     interface{}
		wantMsg string
	}{
		{
			name:    "unknown column",
			op:      "Column",
			kind:    "column",
			key:     "age",
			wantMsg: "bamboo: Column: unknown column: age",
		},
		{
			name:    "unknown operation",
			op:      "Invoke",
			kind:    "operation",
			key:     "summarize",
			wantMsg: "bamboo: Invoke: unknown operation: summarize",
		},
		{
			name:    "unknown label",
			op:      "RowsByLabel",
			kind:    "label",
			key:     42,
			wantMsg: "bamboo: RowsByLabel: unknown label: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewKeyError(tt.op, tt.kind, tt.key)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// KeyError型にキャスト可能か確認
			var keyErr *KeyError
			if !As(err, &keyErr) {
				t.Error("Error should be castable to *KeyError")
			}
		})
	}
}

func TestNewValueError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		param   string
		value   interface{}
		message string
		wantMsg string
	}{
		{
			name:    "with message",
			op:      "NewShuffleSplit",
			param:   "test_size",
			value:   -0.5,
			message: "must be in (0, 1)",
			wantMsg: "bamboo: NewShuffleSplit: test_size: -0.5 (must be in (0, 1))",
		},
		{
			name:    "without message",
			op:      "ThresholdSummary",
			param:   "records",
			value:   0,
			message: "",
			wantMsg: "bamboo: ThresholdSummary: records: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.message != "" {
				err = NewValueError(tt.op, fmt.Sprintf("%s: %v (%s)", tt.param, tt.value, tt.message))
			} else {
				err = NewValueError(tt.op, fmt.Sprintf("%s: %v", tt.param, tt.value))
			}

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// ValueError型にキャスト可能か確認
			var valErr *ValueError
			if !As(err, &valErr) {
				t.Error("Error should be castable to *ValueError")
			}
		})
	}
}

func TestNewUndefinedMetricWarning(t *testing.T) {
	warn := NewUndefinedMetricWarning("precision", "no predicted samples", 0.0)

	// 基本的なエラーメッセージの確認
	want := "'precision' is ill-defined and being set to 0.000000 due to no predicted samples."
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}

	// UndefinedMetricWarning型へのキャストのみ確認
	var umWarn *UndefinedMetricWarning
	if !As(warn, &umWarn) {
		t.Error("Warning should be castable to *UndefinedMetricWarning")
	}
}

func TestWarnHandler(t *testing.T) {
	warningMutex.Lock()
	prev := warningHandler
	warningMutex.Unlock()
	defer SetWarningHandler(prev)

	var captured []error
	SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})

	Warn(NewUndefinedMetricWarning("recall", "no true samples", 0.0))
	Warn(NewDataConversionWarning("int", "float64", "mixed numeric column"))

	if len(captured) != 2 {
		t.Fatalf("Expected 2 captured warnings, got %d", len(captured))
	}

	var umWarn *UndefinedMetricWarning
	if !As(captured[0], &umWarn) {
		t.Error("First warning should be *UndefinedMetricWarning")
	}
	if umWarn.Metric != "recall" {
		t.Errorf("Metric = %v, want recall", umWarn.Metric)
	}
}

func TestWrapAndIs(t *testing.T) {
	// 元のエラー
	baseErr := ErrNotImplemented

	// ラップ
	wrapped := Wrap(baseErr, "in Dispatcher.Invoke")

	// Is関数でチェック
	if !Is(wrapped, ErrNotImplemented) {
		t.Error("Expected Is(wrapped, ErrNotImplemented) to be true")
	}

	// エラーメッセージの確認
	if !strings.Contains(wrapped.Error(), "in Dispatcher.Invoke") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	// 元のエラー
	baseErr := ErrEmptyData

	// フォーマット付きラップ
	wrapped := Wrapf(baseErr, "in %s: expected %d, got %d", "Matrix", 10, 0)

	// Is関数でチェック
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	// エラーメッセージの確認
	expectedMsg := "in Matrix: expected 10, got 0"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	// エラーチェーンの作成
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Fit", "failed", err2)

	// チェーン全体を確認
	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	// スタックトレースの確認（詳細表示）
	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}
