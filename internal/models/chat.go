package models

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message  string          `json:"message"`
	Mode     string          `json:"mode"`
	Envision *EnvisionParams `json:"envision,omitempty"`
}

// EnvisionParams holds the optional round sheet for envision mode. Every field
// is free-form text supplied by the debater.
type EnvisionParams struct {
	Topic         string `json:"topic"`
	Side          string `json:"side"`
	Value         string `json:"value"`
	Criterion     string `json:"criterion"`
	CaseText      string `json:"caseText"`
	JudgeType     string `json:"judgeType"`
	EndgamePref   string `json:"endgamePref"`
	RiskPosture   string `json:"riskPosture"`
	StrategyStyle string `json:"strategyStyle"`
	DecisionLens  string `json:"decisionLens"`
}

// ChatResponse is the coaching feedback returned to the client.
type ChatResponse struct {
	Text string `json:"text"`
}

// LoginRequest is the payload sent to the login endpoint.
type LoginRequest struct {
	Password string `json:"password"`
}
