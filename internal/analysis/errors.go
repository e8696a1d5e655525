package analysis

import "errors"

var ErrAnalysisFailed = errors.New("failed to load statistics, please retry later")
