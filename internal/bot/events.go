package bot

// Event — входящее событие от транспорта: пользователь, сырой текст и,
// если сообщение было командой, её имя и токены аргументов.
type Event struct {
	UserID  int64
	Text    string
	Command string
	Args    []string
}

// Reply — исходящий ответ: текст либо изображение с подписью.
type Reply struct {
	Text    string
	Photo   []byte
	Caption string
}

func textReply(lines ...string) []Reply {
	replies := make([]Reply, 0, len(lines))
	for _, line := range lines {
		replies = append(replies, Reply{Text: line})
	}
	return replies
}
