package domain

// ImageList is an ordered list of image URLs. Index 0 is the cover.
type ImageList struct {
	urls []string
}

func NewImageList(urls []string) *ImageList {
	return &ImageList{urls: append([]string{}, urls...)}
}

func (l *ImageList) URLs() []string {
	return append([]string{}, l.urls...)
}

func (l *ImageList) Cover() (string, bool) {
	if len(l.urls) == 0 {
		return "", false
	}
	return l.urls[0], true
}

func (l *ImageList) Len() int {
	return len(l.urls)
}

// Reorder replaces the list with newOrder as given.
func (l *ImageList) Reorder(newOrder []string) {
	l.urls = append([]string{}, newOrder...)
}

// Remove drops the first occurrence of url.
func (l *ImageList) Remove(url string) bool {
	for i, u := range l.urls {
		if u == url {
			l.urls = append(l.urls[:i:i], l.urls[i+1:]...)
			return true
		}
	}
	return false
}

// Append adds urls that are not already present, keeping their order.
func (l *ImageList) Append(urls ...string) {
	for _, u := range urls {
		if u != "" && l.indexOf(u) < 0 {
			l.urls = append(l.urls, u)
		}
	}
}

// Drop finishes a drag of active onto over. Nothing moves when over is
// empty, equals active, or either URL is not in the list.
func (l *ImageList) Drop(active, over string) bool {
	if over == "" || active == over {
		return false
	}
	from, to := l.indexOf(active), l.indexOf(over)
	if from < 0 || to < 0 {
		return false
	}
	l.Reorder(MoveItem(l.urls, from, to))
	return true
}

func (l *ImageList) indexOf(url string) int {
	for i, u := range l.urls {
		if u == url {
			return i
		}
	}
	return -1
}

// MoveItem removes the element at from and inserts it at to, returning a new slice.
func MoveItem(list []string, from, to int) []string {
	out := append([]string{}, list...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]string{item}, out[to:]...)...)
	return out
}
