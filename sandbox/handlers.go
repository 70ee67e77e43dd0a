package sandbox

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sendpost/sendpost-go/types"
)

func (h *handler) listSubAccounts(w http.ResponseWriter, r *http.Request) {
	items := page(r, h.store.SubAccounts(), func(s types.SubAccount) string { return s.Name })
	writeJSON(w, http.StatusOK, items)
}

func (h *handler) createSubAccount(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSubAccountRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}
	writeJSON(w, http.StatusOK, h.store.AddSubAccount(req.Name, "", types.SubAccountTypePlus))
}

func (h *handler) listWebhooks(w http.ResponseWriter, r *http.Request) {
	items := page(r, h.store.Webhooks(), func(wh types.Webhook) string { return wh.Url })
	writeJSON(w, http.StatusOK, items)
}

func (h *handler) createWebhook(w http.ResponseWriter, r *http.Request) {
	var req types.CreateWebhookRequest
	if !decode(w, r, &req) {
		return
	}
	if !strings.HasPrefix(req.Url, "http://") && !strings.HasPrefix(req.Url, "https://") {
		writeError(w, http.StatusUnprocessableEntity, "url must be an http(s) URL")
		return
	}
	writeJSON(w, http.StatusOK, h.store.AddWebhook(req))
}

func (h *handler) listDomains(w http.ResponseWriter, r *http.Request) {
	sa := subAccountFrom(r)
	items := page(r, h.store.Domains(sa.Id), func(d types.Domain) string { return d.Name })
	writeJSON(w, http.StatusOK, items)
}

func (h *handler) createDomain(w http.ResponseWriter, r *http.Request) {
	var req types.CreateDomainRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}
	writeJSON(w, http.StatusOK, h.store.AddDomain(subAccountFrom(r).Id, req.Name))
}

func (h *handler) sendEmail(w http.ResponseWriter, r *http.Request) {
	var msg types.EmailMessage
	if !decode(w, r, &msg) {
		return
	}
	switch {
	case msg.From.Email == "":
		writeError(w, http.StatusUnprocessableEntity, "from is required")
		return
	case len(msg.To) == 0:
		writeError(w, http.StatusUnprocessableEntity, "to must contain at least one recipient")
		return
	case msg.Subject == "":
		writeError(w, http.StatusUnprocessableEntity, "subject is required")
		return
	case msg.IpPool != "" && !h.store.hasPool(msg.IpPool):
		writeError(w, http.StatusUnprocessableEntity, "unknown ippool "+msg.IpPool)
		return
	}
	h.logger.Debugf("sandbox: accepted %q for %d recipient(s)", msg.Subject, len(msg.To))
	writeJSON(w, http.StatusOK, h.store.Send(subAccountFrom(r), msg))
}

func (h *handler) getMessage(w http.ResponseWriter, r *http.Request) {
	m, ok := h.store.Message(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "message not found")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *handler) subAccountStats(w http.ResponseWriter, r *http.Request) {
	id, from, to, ok := h.statsParams(w, r)
	if !ok {
		return
	}
	var res []types.Stat
	for _, day := range h.store.DailyStats(id, from, to) {
		counts := day.Stat.StatCounts
		res = append(res, types.Stat{Date: day.Date, Stat: &counts})
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) subAccountAggregateStats(w http.ResponseWriter, r *http.Request) {
	id, from, to, ok := h.statsParams(w, r)
	if !ok {
		return
	}
	var total types.AggregateStat
	for _, day := range h.store.DailyStats(id, from, to) {
		total.Add(day.Stat.StatCounts)
	}
	writeJSON(w, http.StatusOK, total)
}

func (h *handler) accountStats(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRange(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.store.DailyStats(0, from, to))
}

func (h *handler) statsParams(w http.ResponseWriter, r *http.Request) (int64, time.Time, time.Time, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || !h.store.hasSubAccount(id) {
		writeError(w, http.StatusNotFound, "sub-account not found")
		return 0, time.Time{}, time.Time{}, false
	}
	from, to, ok := dateRange(w, r)
	return id, from, to, ok
}

func dateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	q := r.URL.Query()
	from, err := time.Parse(types.DateLayout, q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(types.DateLayout, q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "to must not be before from")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *handler) listIPs(w http.ResponseWriter, r *http.Request) {
	items := page(r, h.store.IPs(), func(ip types.IP) string { return ip.PublicIp })
	writeJSON(w, http.StatusOK, items)
}

func (h *handler) listIPPools(w http.ResponseWriter, r *http.Request) {
	items := page(r, h.store.Pools(), func(p types.IPPool) string { return p.Name })
	writeJSON(w, http.StatusOK, items)
}

func (h *handler) createIPPool(w http.ResponseWriter, r *http.Request) {
	var req types.IPPoolCreateRequest
	if !decode(w, r, &req) {
		return
	}
	switch {
	case strings.TrimSpace(req.Name) == "":
		writeError(w, http.StatusUnprocessableEntity, "name is required")
		return
	case len(req.Ips) == 0:
		writeError(w, http.StatusUnprocessableEntity, "ips must contain at least one IP")
		return
	case req.WarmupInterval <= 0:
		writeError(w, http.StatusUnprocessableEntity, "warmupInterval must be greater than 0")
		return
	case h.store.hasPool(req.Name):
		writeError(w, http.StatusConflict, "ip pool "+req.Name+" already exists")
		return
	}
	pool, unknown := h.store.AddPool(req)
	if unknown != "" {
		writeError(w, http.StatusUnprocessableEntity, "ip "+unknown+" is not allocated to this account")
		return
	}
	writeJSON(w, http.StatusOK, pool)
}

// page applies the search, offset and limit query parameters.
func page[T any](r *http.Request, items []T, name func(T) string) []T {
	q := r.URL.Query()

	if search := strings.ToLower(q.Get("search")); search != "" {
		var filtered []T
		for _, item := range items {
			if strings.Contains(strings.ToLower(name(item)), search) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	if items == nil {
		return []T{}
	}
	return items
}
