package rocketmq

import (
	"encoding/json"
	"fmt"
)

const repairTag = "counter_repair"

// RepairMessage 请求对某条推文重算点赞/点踩计数
type RepairMessage struct {
	TuitID int64  `json:"tuit_id,string"`
	Reason string `json:"reason,omitempty"`
	At     int64  `json:"at"`
}

func (m *RepairMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}

func DecodeRepair(body []byte) (*RepairMessage, error) {
	var m RepairMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("decode repair message: %w", err)
	}
	if m.TuitID == 0 {
		return nil, fmt.Errorf("decode repair message: missing tuit_id")
	}
	return &m, nil
}
