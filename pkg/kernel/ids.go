package kernel

// JobCode is the unique code of a job opening, as assigned by the ATS export.
type JobCode string

func NewJobCode(code string) JobCode { return JobCode(code) }
func (c JobCode) String() string     { return string(c) }
func (c JobCode) IsEmpty() bool      { return string(c) == "" }

// CandidateCode is the unique code of a candidate.
type CandidateCode string

func NewCandidateCode(code string) CandidateCode { return CandidateCode(code) }
func (c CandidateCode) String() string           { return string(c) }
func (c CandidateCode) IsEmpty() bool            { return string(c) == "" }

// RunID identifies one training run.
type RunID string

func NewRunID(id string) RunID { return RunID(id) }
func (r RunID) String() string { return string(r) }
func (r RunID) IsEmpty() bool  { return string(r) == "" }
