package task

import "encoding/json"

// MarshalList serialises a task slice for storage.
func MarshalList(tasks []Task) ([]byte, error) {
	return json.MarshalIndent(tasks, "", "  ")
}

// UnmarshalList deserialises a stored task slice.
func UnmarshalList(data []byte) ([]Task, error) {
	if len(data) == 0 {
		return []Task{}, nil
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
