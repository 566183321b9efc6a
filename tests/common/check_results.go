package common

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

const timeFormat = "2006-01-02 15:04:05.000 -0700 MST"

func formatTimeIfPossible(v interface{}) (string, bool) {
	if t, ok := v.(time.Time); ok {
		return t.Format(timeFormat), true
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return "", false
}

func deepEqual(a, b interface{}) bool {
	if aStr, aOk := formatTimeIfPossible(a); aOk {
		if bStr, bOk := formatTimeIfPossible(b); bOk {
			return aStr == bStr
		}
	}

	strA := fmt.Sprintf("%v", a)
	strB := fmt.Sprintf("%v", b)

	if strA == strB {
		return true
	}

	if reflect.TypeOf(a).Kind() != reflect.TypeOf(b).Kind() {
		return false
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)

	switch va.Kind() {
	case reflect.Array, reflect.Slice:
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !deepEqual(va.Index(i).Interface(), vb.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Map:
		if va.Len() != vb.Len() {
			return false
		}
		for _, k := range va.MapKeys() {
			if !deepEqual(va.MapIndex(k).Interface(), vb.MapIndex(k).Interface()) {
				return false
			}
		}
		return true
	}

	return strA == strB
}

// CheckResults compares feature rows against expected rows, matching rows by
// the join id value. Every field of a result row must equal the expected
// value; expected rows may carry extra fields the read did not select.
func CheckResults(joinIdName string, results []map[string]interface{}, expectedResults []map[string]interface{}) (bool, error) {
	if len(results) != len(expectedResults) {
		return false, fmt.Errorf("results length(%d) not equal to expected results length(%d)", len(results), len(expectedResults))
	}
	expectedResultsIdxMap := make(map[string]int)
	for i, expectedResult := range expectedResults {
		if joinId, ok := expectedResult[joinIdName]; ok {
			expectedResultsIdxMap[fmt.Sprintf("%v", joinId)] = i
		} else {
			return false, errors.New("join id value not found in expected result")
		}
	}

	for i, result := range results {
		joinId, ok := result[joinIdName]
		if !ok {
			return false, errors.New("join id value not found in result")
		}
		expectedResultIdx, ok := expectedResultsIdxMap[fmt.Sprintf("%v", joinId)]
		if !ok {
			return false, fmt.Errorf("join id %v not found in expected results", joinId)
		}
		expectedResult := expectedResults[expectedResultIdx]
		for key, value := range result {
			expectedVal, expectedOK := expectedResult[key]
			if !expectedOK {
				return false, fmt.Errorf("feature field %v: result value:%v expected value is nil (the current row %s == join_id is %v, line is %d)", key, value, joinIdName, result[joinIdName], i)
			}
			if !deepEqual(value, expectedVal) {
				return false, fmt.Errorf("feature field %v: result value:%v not equal to expected value:%v (the current row %s == join_id is %v, line is %d)", key, value, expectedVal, joinIdName, result[joinIdName], i)
			}
		}
	}

	return true, nil
}
