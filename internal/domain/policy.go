package domain

import (
	"time"

	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

// MinBookableDate вычисляет самую раннюю дату, на которую разрешено бронирование
// К календарной дате момента now прибавляется leadTimeDays целых дней;
// leadTimeDays = 0 означает, что бронировать можно сегодня.
// Чистая функция - вычисляется заново на каждый запрос и не мемоизируется
func MinBookableDate(now time.Time, leadTimeDays int) types.DateString {
	today := types.NewDateString(now)
	// AddDays не может вернуть ошибку для даты, полученной из time.Time
	min, _ := today.AddDays(leadTimeDays)
	return min
}
