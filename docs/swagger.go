// Package docs Asset Map Service API.
//
// Сервис кластеризации и взаимодействия с картой электрических активов.
// Загружает активы из PostgreSQL или внешнего REST API, строит иерархический
// индекс кластеров и ведёт серверные сессии карт, которые отвечают на события
// клиента декларативными командами.
//
// Основные возможности:
// - Кадры кластеров для видимой области и зума
// - Зум раскрытия, дочерние элементы и листья кластера
// - Видимый набор активов для боковой панели
// - Разрешение клика по близко расположенным активам
// - Сессии карт: загрузка, клики, наведение, смена фильтра
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
